package strictvec

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/hupe1980/strictvec/capability"
	"github.com/hupe1980/strictvec/typestate"
)

// ErrNegative is the cause of a DomainError raised by NonNegative.
var ErrNegative = errors.New("value must be non-negative")

// Mode selects how a Strategy decides whether a value is acceptable.
type Mode uint8

const (
	// ModeStrictScalar accepts values of one fixed scalar kind.
	ModeStrictScalar Mode = iota
	// ModeStrictObject accepts objects of one fixed exact type.
	ModeStrictObject
	// ModeConforming accepts objects assignable to a fixed type or interface.
	ModeConforming
	// ModeDynamicStrict binds to the kind (and exact type) of the first value.
	ModeDynamicStrict
	// ModeDynamicLenient binds to the kind of the first value and narrows
	// the shared capability set of admitted objects.
	ModeDynamicLenient
)

var modeNames = [...]string{
	ModeStrictScalar:   "strict-scalar",
	ModeStrictObject:   "strict-object",
	ModeConforming:     "conforming",
	ModeDynamicStrict:  "dynamic-strict",
	ModeDynamicLenient: "dynamic-lenient",
}

func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return "invalid"
}

// DomainCheck is a secondary check run after a value passed the kind check.
// A non-nil return rejects the value with a DomainError.
type DomainCheck func(v any) error

// NonNegative rejects integers and floats below zero.
func NonNegative(v any) error {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if rv.Int() < 0 {
			return ErrNegative
		}
	case reflect.Float32, reflect.Float64:
		if rv.Float() < 0 {
			return ErrNegative
		}
	}
	return nil
}

// Strategy is the validation policy of a vector. Strategies are immutable
// values; the per-vector binding lives in the vector's typestate.State.
type Strategy struct {
	name     string
	mode     Mode
	kind     typestate.Kind
	class    reflect.Type
	optional bool
	checks   []DomainCheck
}

// StrictScalar accepts only values of kind k.
func StrictScalar(k typestate.Kind) Strategy {
	return Strategy{mode: ModeStrictScalar, kind: k}
}

// StrictNonNegative accepts only values of kind k that are >= 0.
func StrictNonNegative(k typestate.Kind) Strategy {
	return StrictScalar(k).WithCheck(NonNegative)
}

// OptionalScalar accepts nil and values of kind k.
func OptionalScalar(k typestate.Kind) Strategy {
	return StrictScalar(k).AsOptional()
}

// OptionalNonNegative accepts nil and values of kind k that are >= 0.
func OptionalNonNegative(k typestate.Kind) Strategy {
	return StrictNonNegative(k).AsOptional()
}

// StrictObject accepts only values whose dynamic type is exactly t.
func StrictObject(t reflect.Type) Strategy {
	return Strategy{mode: ModeStrictObject, kind: typestate.KindObject, class: t}
}

// StrictObjectOf accepts only values whose dynamic type is exactly T.
func StrictObjectOf[T any]() Strategy {
	return StrictObject(reflect.TypeFor[T]())
}

// Conforming accepts objects whose dynamic type is assignable to t. When t
// is an interface type this means the value implements it.
func Conforming(t reflect.Type) Strategy {
	return Strategy{mode: ModeConforming, kind: typestate.KindObject, class: t}
}

// ConformingTo accepts objects assignable to T.
func ConformingTo[T any]() Strategy {
	return Conforming(reflect.TypeFor[T]())
}

// DynamicStrict binds to the first value admitted, nil included, and then
// requires the same kind, and for objects the same exact type.
func DynamicStrict() Strategy {
	return Strategy{mode: ModeDynamicStrict}
}

// DynamicLenient binds like DynamicStrict but accepts objects of different
// types as long as they keep sharing at least one capability.
func DynamicLenient() Strategy {
	return Strategy{mode: ModeDynamicLenient}
}

// OptionalDynamicStrict is DynamicStrict that always admits nil; nil never
// binds the vector.
func OptionalDynamicStrict() Strategy {
	return DynamicStrict().AsOptional()
}

// OptionalDynamicLenient is DynamicLenient that always admits nil; nil never
// binds or narrows the vector.
func OptionalDynamicLenient() Strategy {
	return DynamicLenient().AsOptional()
}

// AsOptional returns a copy of s that always admits nil.
func (s Strategy) AsOptional() Strategy {
	s.optional = true
	return s
}

// WithCheck returns a copy of s with additional domain checks.
func (s Strategy) WithCheck(checks ...DomainCheck) Strategy {
	s.checks = append(append([]DomainCheck(nil), s.checks...), checks...)
	return s
}

// Named returns a copy of s that reports itself as name in errors and logs.
func (s Strategy) Named(name string) Strategy {
	s.name = name
	return s
}

// Mode returns the strategy's mode.
func (s Strategy) Mode() Mode { return s.mode }

// Optional reports whether nil is always admitted.
func (s Strategy) Optional() bool { return s.optional }

// Dynamic reports whether the strategy binds on first use.
func (s Strategy) Dynamic() bool {
	return s.mode == ModeDynamicStrict || s.mode == ModeDynamicLenient
}

func (s Strategy) String() string {
	if s.name != "" {
		return s.name
	}
	var name string
	switch s.mode {
	case ModeStrictScalar:
		name = fmt.Sprintf("%s(%s)", s.mode, s.kind)
	case ModeStrictObject, ModeConforming:
		name = fmt.Sprintf("%s(%s)", s.mode, s.class)
	default:
		name = s.mode.String()
	}
	if s.optional {
		name = "optional " + name
	}
	return name
}

// initialState returns the state a new vector of this strategy starts with.
func (s Strategy) initialState() typestate.State {
	switch s.mode {
	case ModeStrictScalar:
		return typestate.Bound(s.kind)
	case ModeStrictObject, ModeConforming:
		return typestate.BoundClass(s.class)
	default:
		return typestate.Unbound()
	}
}

// Validate reports whether v would be admitted by an empty vector using s.
func (s Strategy) Validate(v any) error {
	st := s.initialState()
	return s.admit(&st, capability.Default, v)
}

// admit checks v against st, binding or narrowing st on success.
// st is left untouched when v is rejected.
func (s Strategy) admit(st *typestate.State, table *capability.Table, v any) error {
	k := typestate.Of(v)
	if k == typestate.KindNull && s.optional {
		return nil
	}

	next := *st
	switch s.mode {
	case ModeStrictScalar:
		if k != s.kind {
			return s.mismatch(st, v, k, "")
		}
	case ModeStrictObject:
		if k != typestate.KindObject || reflect.TypeOf(v) != s.class {
			return s.mismatch(st, v, k, "")
		}
	case ModeConforming:
		if k != typestate.KindObject || !reflect.TypeOf(v).AssignableTo(s.class) {
			return s.mismatch(st, v, k, "")
		}
	case ModeDynamicStrict, ModeDynamicLenient:
		if err := s.admitDynamic(&next, table, v, k); err != nil {
			return err
		}
	default:
		return s.mismatch(st, v, k, "unknown strategy mode")
	}

	for _, check := range s.checks {
		if err := check(v); err != nil {
			return &DomainError{Strategy: s.String(), Value: v, cause: err}
		}
	}
	*st = next
	return nil
}

func (s Strategy) admitDynamic(st *typestate.State, table *capability.Table, v any, k typestate.Kind) error {
	if !st.IsBound() {
		next := typestate.Bound(k)
		if k == typestate.KindObject {
			if s.mode == ModeDynamicLenient {
				next.Caps = table.Profile(reflect.TypeOf(v)).Clone()
			} else {
				next.Class = reflect.TypeOf(v)
			}
		}
		*st = next
		return nil
	}

	if k != st.Kind {
		return s.mismatch(st, v, k, "")
	}
	if k != typestate.KindObject {
		return nil
	}

	t := reflect.TypeOf(v)
	if s.mode == ModeDynamicStrict {
		if t != st.Class {
			return s.mismatch(st, v, k, "")
		}
		return nil
	}

	narrowed := st.Caps.Intersect(table.Profile(t))
	if narrowed.Len() == 0 {
		return s.mismatch(st, v, k, "no capability in common")
	}
	st.Caps = narrowed
	return nil
}

func (s Strategy) mismatch(st *typestate.State, v any, k typestate.Kind, reason string) error {
	return &TypeMismatchError{
		Strategy: s.String(),
		Want:     st.Clone(),
		Got:      k,
		Type:     reflect.TypeOf(v),
		Reason:   reason,
	}
}
