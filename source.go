package strictvec

import (
	"iter"
	"reflect"
)

// Enumerable is a source that can list its values in order. *Vector
// implements it.
type Enumerable interface {
	Values() []any
}

// materialize turns a source argument of Difference, Intersection or Merge
// into a slice. Accepted sources are Enumerable, []any, iter.Seq[any],
// iter.Seq2[int, any] and any slice or array. Maps are rejected because
// their order is undefined.
func materialize(src any) ([]any, error) {
	switch s := src.(type) {
	case nil:
		return nil, sourceTypeError(src)
	case Enumerable:
		return s.Values(), nil
	case []any:
		return append([]any(nil), s...), nil
	case iter.Seq[any]:
		return collect(s), nil
	case func(func(any) bool):
		return collect(s), nil
	case iter.Seq2[int, any]:
		return collect2(s), nil
	case func(func(int, any) bool):
		return collect2(s), nil
	}

	rv := reflect.ValueOf(src)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = rv.Index(i).Interface()
		}
		return out, nil
	default:
		return nil, sourceTypeError(src)
	}
}

func collect(seq iter.Seq[any]) []any {
	var out []any
	for val := range seq {
		out = append(out, val)
	}
	return out
}

func collect2(seq iter.Seq2[int, any]) []any {
	var out []any
	for _, val := range seq {
		out = append(out, val)
	}
	return out
}

func materializeAll(srcs []any) ([][]any, error) {
	out := make([][]any, len(srcs))
	for i, src := range srcs {
		vals, err := materialize(src)
		if err != nil {
			return nil, err
		}
		out[i] = vals
	}
	return out, nil
}
