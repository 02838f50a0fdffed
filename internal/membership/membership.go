// Package membership implements value-equality sets for dynamically typed
// values.
//
// Equality rules:
//
//   - nil and nil pointers are equal to each other
//   - integers compare by numeric value regardless of width or signedness
//   - floats compare as float64, bools and strings by value
//   - other comparable values use Go == (pointers by identity)
//   - non-comparable values (slices, maps) use reflect.DeepEqual
//
// An integer never equals a float. Integers that fit int64 are kept in a
// Roaring bitmap; everything else falls back to a hash set or a linear scan.
package membership

import (
	"math"
	"reflect"

	"github.com/RoaringBitmap/roaring/v2/roaring64"
	"github.com/hupe1980/strictvec/internal/conv"
)

type nullKey struct{}

type floatKey float64

type boolKey bool

type stringKey string

// Set is a membership set over dynamic values.
type Set struct {
	ints  *roaring64.Bitmap
	keys  map[any]struct{}
	other []any
}

// New creates a set holding values.
func New(values []any) *Set {
	s := &Set{
		ints: roaring64.New(),
		keys: make(map[any]struct{}),
	}
	for _, v := range values {
		s.Add(v)
	}
	return s
}

// Add inserts v.
func (s *Set) Add(v any) {
	if u, ok := intKey(v); ok {
		s.ints.Add(u)
		return
	}
	if k, ok := hashKey(v); ok {
		s.keys[k] = struct{}{}
		return
	}
	s.other = append(s.other, v)
}

// Contains reports whether a value equal to v was added.
func (s *Set) Contains(v any) bool {
	if u, ok := intKey(v); ok {
		return s.ints.Contains(u)
	}
	if k, ok := hashKey(v); ok {
		_, found := s.keys[k]
		return found
	}
	for _, o := range s.other {
		if reflect.DeepEqual(o, v) {
			return true
		}
	}
	return false
}

// Len returns the number of distinct values in the set.
func (s *Set) Len() int {
	return int(s.ints.GetCardinality()) + len(s.keys) + len(s.other)
}

func intKey(v any) (uint64, bool) {
	if v == nil {
		return 0, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return conv.OrderedUint64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return 0, false
		}
		return conv.OrderedUint64(int64(u)), true
	default:
		return 0, false
	}
}

func hashKey(v any) (any, bool) {
	if v == nil {
		return nullKey{}, true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer:
		if rv.IsNil() {
			return nullKey{}, true
		}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		// Only values above MaxInt64 reach this point.
		return rv.Uint(), true
	case reflect.Float32, reflect.Float64:
		return floatKey(rv.Float()), true
	case reflect.Bool:
		return boolKey(rv.Bool()), true
	case reflect.String:
		return stringKey(rv.String()), true
	}
	if rv.Comparable() {
		return v, true
	}
	return nil, false
}
