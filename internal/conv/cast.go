package conv

import (
	"errors"
	"fmt"
	"math"
	"reflect"
)

var (
	// ErrNotInteger is returned when a value is not of an integer kind.
	ErrNotInteger = errors.New("not an integer")
	// ErrOverflow is returned when an integer does not fit the target type.
	ErrOverflow = errors.New("integer overflow")
)

// ToInt converts any signed or unsigned integer value, including named
// integer types, to int.
func ToInt(v any) (int, error) {
	switch x := v.(type) {
	case int:
		return x, nil
	case int64:
		return Int64ToInt(x)
	case nil:
		return 0, ErrNotInteger
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Int64ToInt(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return Uint64ToInt(rv.Uint())
	default:
		return 0, fmt.Errorf("%w: %T", ErrNotInteger, v)
	}
}

// Int64ToInt converts int64 to int safely.
func Int64ToInt(v int64) (int, error) {
	if v > int64(math.MaxInt) || v < int64(math.MinInt) {
		return 0, fmt.Errorf("%w: %d cannot be converted to int", ErrOverflow, v)
	}
	return int(v), nil
}

// Uint64ToInt converts uint64 to int safely.
func Uint64ToInt(v uint64) (int, error) {
	if v > uint64(math.MaxInt) {
		return 0, fmt.Errorf("%w: %d cannot be converted to int (too large)", ErrOverflow, v)
	}
	return int(v), nil
}

// OrderedUint64 maps v onto uint64 preserving order by flipping the sign bit.
func OrderedUint64(v int64) uint64 {
	return uint64(v) ^ (1 << 63)
}
