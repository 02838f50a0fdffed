package strictvec

import (
	"testing"

	"github.com/hupe1980/strictvec/typestate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVector(t *testing.T) {
	t.Run("ConstructAndGet", func(t *testing.T) {
		v, err := NewIntVec(1, 2, 3)
		require.NoError(t, err)

		assert.Equal(t, 3, v.Size())
		val, ok := v.Get(0)
		assert.True(t, ok)
		assert.Equal(t, 1, val)

		_, ok = v.Get(3)
		assert.False(t, ok)
		_, ok = v.Get(-4)
		assert.False(t, ok)
	})

	t.Run("ConstructIsAllOrNothing", func(t *testing.T) {
		v, err := NewIntVec(1, 2, "3", 4)
		assert.ErrorIs(t, err, ErrTypeMismatch)
		assert.Nil(t, v)
	})

	t.Run("NegativeIndexes", func(t *testing.T) {
		v := MustNew(StrictScalar(typestate.KindInt), 19567, 21541, 80)

		val, ok := v.Get(-1)
		require.True(t, ok)
		assert.Equal(t, 80, val)

		require.NoError(t, v.Set(-1, 8000))
		val, _ = v.Get(2)
		assert.Equal(t, 8000, val)
		val, _ = v.Get(-1)
		assert.Equal(t, 8000, val)

		err := v.Set(-4, 1)
		assert.ErrorIs(t, err, ErrIndexOutOfRange)

		var ie *IndexOutOfRangeError
		require.ErrorAs(t, err, &ie)
		assert.Equal(t, -4, ie.Index)
		assert.Equal(t, 3, ie.Size)
	})

	t.Run("SetAppendsAtSize", func(t *testing.T) {
		v := MustNew(DynamicStrict(), "a")

		require.NoError(t, v.Set(1, "b"))
		require.NoError(t, v.Append("c"))
		assert.Equal(t, []any{"a", "b", "c"}, v.Values())

		assert.ErrorIs(t, v.Set(5, "x"), ErrIndexOutOfRange)
		assert.Equal(t, 3, v.Size())
	})

	t.Run("SetValidatesBeforeIndex", func(t *testing.T) {
		v := MustNew(StrictScalar(typestate.KindString), "a")

		err := v.Set(10, 1)
		assert.ErrorIs(t, err, ErrTypeMismatch)
		assert.NotErrorIs(t, err, ErrIndexOutOfRange)
	})

	t.Run("Delete", func(t *testing.T) {
		v := MustNew(DynamicStrict(), "a", "b", "c", "d")

		v.Delete(1)
		assert.Equal(t, []any{"a", "c", "d"}, v.Values())

		v.Delete(-1)
		assert.Equal(t, []any{"a", "c"}, v.Values())

		v.Delete(7)
		v.Delete(-3)
		assert.Equal(t, []any{"a", "c"}, v.Values())
	})

	t.Run("PushAndPop", func(t *testing.T) {
		v := MustNew(DynamicStrict(), 1, 2)

		require.NoError(t, v.Push(3, 4))
		assert.Equal(t, []any{1, 2, 3, 4}, v.Values())

		val, err := v.Pop()
		require.NoError(t, err)
		assert.Equal(t, 4, val)
		assert.Equal(t, 3, v.Size())
	})

	t.Run("PushIsAllOrNothing", func(t *testing.T) {
		v := MustNew(DynamicStrict(), 1, 2)

		err := v.Push(3, "4", 5)
		assert.ErrorIs(t, err, ErrTypeMismatch)
		assert.Equal(t, []any{1, 2}, v.Values())
	})

	t.Run("UnshiftAndShift", func(t *testing.T) {
		v := MustNew(DynamicStrict(), 3)

		require.NoError(t, v.Unshift(1, 2))
		assert.Equal(t, []any{1, 2, 3}, v.Values())

		val, err := v.Shift()
		require.NoError(t, err)
		assert.Equal(t, 1, val)
		assert.Equal(t, []any{2, 3}, v.Values())

		assert.ErrorIs(t, v.Unshift(true), ErrTypeMismatch)
		assert.Equal(t, []any{2, 3}, v.Values())
	})

	t.Run("Underflow", func(t *testing.T) {
		v := MustNew(DynamicStrict())

		_, err := v.Pop()
		assert.ErrorIs(t, err, ErrUnderflow)

		_, err = v.Shift()
		assert.ErrorIs(t, err, ErrUnderflow)
	})

	t.Run("Insert", func(t *testing.T) {
		v := MustNew(StrictScalar(typestate.KindString), "q", "w", "t", "y")

		require.NoError(t, v.Insert(2, "e", "r"))
		assert.Equal(t, []any{"q", "w", "e", "r", "t", "y"}, v.Values())
	})

	t.Run("InsertEdges", func(t *testing.T) {
		v := MustNew(DynamicStrict(), 2)

		require.NoError(t, v.Insert(0, 0, 1))
		require.NoError(t, v.Insert(3, 3))
		require.NoError(t, v.Insert(-1, 9))
		assert.Equal(t, []any{0, 1, 2, 9, 3}, v.Values())

		assert.ErrorIs(t, v.Insert(6, 1), ErrIndexOutOfRange)
		assert.ErrorIs(t, v.Insert(-6, 1), ErrIndexOutOfRange)
		assert.ErrorIs(t, v.Insert(1, 1, "x"), ErrTypeMismatch)
		assert.Equal(t, []any{0, 1, 2, 9, 3}, v.Values())
	})

	t.Run("InsertIntoEmpty", func(t *testing.T) {
		v := MustNew(DynamicStrict())

		require.NoError(t, v.Insert(0, "a"))
		assert.Equal(t, []any{"a"}, v.Values())
	})

	t.Run("Remove", func(t *testing.T) {
		v := MustNew(DynamicStrict(), "a", "b", "c")

		val, err := v.Remove(-2)
		require.NoError(t, err)
		assert.Equal(t, "b", val)
		assert.Equal(t, []any{"a", "c"}, v.Values())

		_, err = v.Remove(2)
		assert.ErrorIs(t, err, ErrIndexOutOfRange)
	})

	t.Run("GetAs", func(t *testing.T) {
		v := MustNew(DynamicStrict(), "a")

		s, ok := GetAs[string](v, 0)
		assert.True(t, ok)
		assert.Equal(t, "a", s)

		_, ok = GetAs[int](v, 0)
		assert.False(t, ok)

		_, ok = GetAs[string](v, 1)
		assert.False(t, ok)
	})

	t.Run("ValuesIsACopy", func(t *testing.T) {
		v := MustNew(DynamicStrict(), 1)

		vals := v.Values()
		vals[0] = 2

		val, _ := v.Get(0)
		assert.Equal(t, 1, val)
	})
}

func TestBatchLeavesBindingUnchanged(t *testing.T) {
	v := MustNew(DynamicStrict())

	// The first value would bind to int, the second fails.
	err := v.Push(1, "2")
	assert.ErrorIs(t, err, ErrTypeMismatch)
	assert.False(t, v.State().IsBound())

	require.NoError(t, v.Push("a"))
	assert.Equal(t, typestate.KindString, v.State().Kind)
}
