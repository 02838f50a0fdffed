// Package typestate classifies dynamic Go values into a closed set of kinds
// and records the type a vector is currently bound to.
package typestate

import "reflect"

// Kind identifies the shape of a value.
type Kind uint8

const (
	// KindUnbound means no value has bound the state yet.
	KindUnbound Kind = iota
	// KindNull represents an untyped nil or a nil pointer.
	KindNull
	// KindBool represents a boolean value.
	KindBool
	// KindInt represents any signed or unsigned integer value.
	KindInt
	// KindFloat represents a float32 or float64 value.
	KindFloat
	// KindString represents a string value.
	KindString
	// KindSequence represents a slice, array or map.
	KindSequence
	// KindObject represents a struct, a non-nil pointer or a complex number.
	KindObject
	// KindResource represents an opaque handle: chan, func, uintptr or unsafe.Pointer.
	KindResource
)

var kindNames = [...]string{
	KindUnbound:  "unbound",
	KindNull:     "null",
	KindBool:     "bool",
	KindInt:      "int",
	KindFloat:    "float",
	KindString:   "string",
	KindSequence: "sequence",
	KindObject:   "object",
	KindResource: "resource",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "invalid"
}

// Scalar reports whether k is bool, int, float or string.
func (k Kind) Scalar() bool {
	return k >= KindBool && k <= KindString
}

// Of returns the kind of v. Named types are classified by their underlying kind.
func Of(v any) Kind {
	if v == nil {
		return KindNull
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return KindBool
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return KindInt
	case reflect.Float32, reflect.Float64:
		return KindFloat
	case reflect.String:
		return KindString
	case reflect.Slice, reflect.Array, reflect.Map:
		return KindSequence
	case reflect.Chan, reflect.Func, reflect.Uintptr, reflect.UnsafePointer:
		return KindResource
	case reflect.Pointer:
		if rv.IsNil() {
			return KindNull
		}
		return KindObject
	default:
		return KindObject
	}
}
