package strictvec

import (
	"errors"
	"math"
	"time"

	"github.com/hupe1980/strictvec/internal/conv"
)

// The Offset methods accept dynamically typed indexes, for callers that
// forward indexes they did not produce themselves. Any Go integer type is
// accepted; any other type fails with ErrTypeMismatch.

// ResolveIndex converts offset to an int and resolves negative values from
// the end. The result is not bounds checked.
func (v *Vector) ResolveIndex(offset any) (int, error) {
	i, err := toIndex(offset)
	if err != nil {
		return 0, err
	}
	return v.resolve(i), nil
}

// OffsetExists is Exists for a dynamically typed index.
func (v *Vector) OffsetExists(offset any) (bool, error) {
	i, err := toIndex(offset)
	if err != nil {
		return false, err
	}
	return v.Exists(i), nil
}

// OffsetGet is Get for a dynamically typed index.
func (v *Vector) OffsetGet(offset any) (any, bool, error) {
	i, err := toIndex(offset)
	if err != nil {
		return nil, false, err
	}
	val, ok := v.Get(i)
	return val, ok, nil
}

// OffsetSet is Set for a dynamically typed index. A nil offset appends.
// The value is validated before the offset.
func (v *Vector) OffsetSet(offset, val any) error {
	if offset == nil {
		return v.Append(val)
	}

	start := time.Now()
	st, err := v.stage(val)
	if err != nil {
		return v.observe(OpSet, 1, start, err)
	}
	i, err := toIndex(offset)
	if err != nil {
		return v.observe(OpSet, 1, start, err)
	}
	return v.commitSet(i, val, st, start)
}

// OffsetUnset is Delete for a dynamically typed index.
func (v *Vector) OffsetUnset(offset any) error {
	i, err := toIndex(offset)
	if err != nil {
		return err
	}
	v.Delete(i)
	return nil
}

func toIndex(offset any) (int, error) {
	i, err := conv.ToInt(offset)
	switch {
	case err == nil:
		return i, nil
	case errors.Is(err, conv.ErrOverflow):
		// Only unsigned values beyond MaxInt overflow; no such index exists.
		return math.MaxInt, nil
	default:
		return 0, indexTypeError(offset)
	}
}
