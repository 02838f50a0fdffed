package strictvec

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/hupe1980/strictvec/capability"
	"github.com/hupe1980/strictvec/testutil"
	"github.com/hupe1980/strictvec/typestate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		v, err := For(DynamicStrict()).Build(1, 2)
		require.NoError(t, err)

		assert.Same(t, capability.Default, v.table)
		assert.IsType(t, NoopMetricsCollector{}, v.metrics)
		assert.Equal(t, 2, v.Size())
	})

	t.Run("Immutable", func(t *testing.T) {
		base := For(DynamicLenient())
		table := capability.NewTable(testutil.FixtureInterfaces()...)
		_ = base.Capabilities(table)

		assert.Nil(t, base.table)
	})

	t.Run("BuildFailureReturnsNil", func(t *testing.T) {
		v, err := For(StrictScalar(typestate.KindBool)).Build(true, 1)
		assert.ErrorIs(t, err, ErrTypeMismatch)
		assert.Nil(t, v)
	})

	t.Run("MustNewPanics", func(t *testing.T) {
		assert.Panics(t, func() {
			MustNew(StrictScalar(typestate.KindInt), "x")
		})
	})

	t.Run("Capabilities", func(t *testing.T) {
		plain := MustNew(DynamicLenient(), &testutil.Alpha{})
		assert.Error(t, plain.Push(&testutil.Gamma{}))

		v, err := For(DynamicLenient()).
			Capabilities(capability.NewTable(testutil.FixtureInterfaces()...)).
			Build(&testutil.Alpha{})
		require.NoError(t, err)
		assert.NoError(t, v.Push(&testutil.Gamma{}))
	})
}

func TestBuilderMetrics(t *testing.T) {
	mc := &BasicMetricsCollector{}
	v, err := For(DynamicStrict()).Metrics(mc).Build(1, 2)
	require.NoError(t, err)

	require.NoError(t, v.Push(3))
	assert.Error(t, v.Push("x"))
	_, err = v.Pop()
	require.NoError(t, err)

	stats := mc.GetStats()
	assert.Equal(t, int64(4), stats.MutationCount)
	assert.Equal(t, int64(4), stats.MutationValues)
	assert.Equal(t, int64(1), stats.MutationErrors)

	s := v.Slice(0, 1)
	_, err = v.Difference(42)
	assert.Error(t, err)
	require.NoError(t, s.Push(9))

	stats = mc.GetStats()
	assert.Equal(t, int64(2), stats.DeriveCount)
	assert.Equal(t, int64(1), stats.DeriveErrors)
	assert.Equal(t, int64(1), stats.DerivedValues)
	assert.Equal(t, int64(5), stats.MutationCount)
}

func TestBuilderLogger(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	v, err := For(StrictScalar(typestate.KindInt).Named("IntVec")).Logger(l).Build(1)
	require.NoError(t, err)
	assert.Error(t, v.Push("two"))
	_ = v.SliceFrom(0)

	out := buf.String()
	assert.Contains(t, out, "strategy=IntVec")
	assert.Contains(t, out, "mutation completed")
	assert.Contains(t, out, "op=construct")
	assert.Contains(t, out, "mutation rejected")
	assert.Contains(t, out, "op=push")
	assert.Contains(t, out, "derive completed")
	assert.Contains(t, out, "op=slice")
}

func TestNoopLoggerDiscards(t *testing.T) {
	l := NoopLogger()
	assert.False(t, l.Enabled(t.Context(), slog.LevelError))
}

func TestOpString(t *testing.T) {
	assert.Equal(t, "construct", OpConstruct.String())
	assert.Equal(t, "intersection", OpIntersection.String())
	assert.Equal(t, "clone", OpClone.String())
	assert.Equal(t, "unknown", Op(200).String())
}

func TestBasicMetricsAverages(t *testing.T) {
	var mc BasicMetricsCollector
	assert.Equal(t, BasicMetricsStats{}, mc.GetStats())

	mc.RecordMutation(OpPush, 2, 10, nil)
	mc.RecordMutation(OpPush, 1, 30, nil)
	mc.RecordDerive(OpMerge, 3, 8, nil)

	stats := mc.GetStats()
	assert.Equal(t, int64(20), stats.MutationAvgNanos)
	assert.Equal(t, int64(3), stats.MutationValues)
	assert.Equal(t, int64(8), stats.DeriveAvgNanos)
	assert.Equal(t, int64(3), stats.DerivedValues)
}

func TestLoggerWithOp(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	l.LogDerive(OpMerge, 2, 7, nil)
	assert.Contains(t, buf.String(), `"op":"merge"`)
	assert.Contains(t, buf.String(), `"size":7`)

	buf.Reset()
	l.WithOp(OpPop).Info("custom")
	assert.Contains(t, buf.String(), `"op":"pop"`)
}

func TestLoggerBelowDebugSkipsRecords(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

	l.LogMutation(OpPush, 1, 1, nil)
	l.LogDerive(OpSlice, 0, 1, nil)
	assert.Empty(t, buf.String())
}

func TestZeroValueVector(t *testing.T) {
	var v Vector

	assert.NotPanics(t, func() {
		assert.ErrorIs(t, v.Push(1), ErrTypeMismatch)
		assert.ErrorIs(t, v.Set(0, "a"), ErrTypeMismatch)
		_, err := v.Pop()
		assert.ErrorIs(t, err, ErrUnderflow)
		v.Delete(0)

		c := v.Clone()
		assert.Equal(t, 0, c.Size())
		_, err = v.Difference([]int{1})
		assert.NoError(t, err)
	})
	assert.Equal(t, 0, v.Size())
}
