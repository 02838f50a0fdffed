package strictvec

import (
	"sync/atomic"
	"time"
)

// Op identifies a vector operation in logs and metrics.
type Op uint8

const (
	OpConstruct Op = iota
	OpSet
	OpDelete
	OpPush
	OpPop
	OpUnshift
	OpShift
	OpInsert
	OpRemove
	OpSlice
	OpDifference
	OpIntersection
	OpMerge
	OpClone
)

var opNames = [...]string{
	OpConstruct:    "construct",
	OpSet:          "set",
	OpDelete:       "delete",
	OpPush:         "push",
	OpPop:          "pop",
	OpUnshift:      "unshift",
	OpShift:        "shift",
	OpInsert:       "insert",
	OpRemove:       "remove",
	OpSlice:        "slice",
	OpDifference:   "difference",
	OpIntersection: "intersection",
	OpMerge:        "merge",
	OpClone:        "clone",
}

func (o Op) String() string {
	if int(o) < len(opNames) {
		return opNames[o]
	}
	return "unknown"
}

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    mutations *prometheus.CounterVec
//	}
//
//	func (p *PrometheusCollector) RecordMutation(op strictvec.Op, count int, d time.Duration, err error) {
//	    p.mutations.WithLabelValues(op.String()).Add(float64(count))
//	}
type MetricsCollector interface {
	// RecordMutation is called after each write operation.
	// count is the number of values written or removed, err is nil if successful.
	RecordMutation(op Op, count int, duration time.Duration, err error)

	// RecordDerive is called after a derived vector has been produced.
	// size is the number of elements in the new vector.
	RecordDerive(op Op, size int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordMutation(Op, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordDerive(Op, int, time.Duration, error)   {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	MutationCount      atomic.Int64
	MutationValues     atomic.Int64
	MutationErrors     atomic.Int64
	MutationTotalNanos atomic.Int64
	DeriveCount        atomic.Int64
	DeriveErrors       atomic.Int64
	DerivedValues      atomic.Int64
	DeriveTotalNanos   atomic.Int64
}

// RecordMutation implements MetricsCollector.
func (b *BasicMetricsCollector) RecordMutation(op Op, count int, duration time.Duration, err error) {
	b.MutationCount.Add(1)
	b.MutationTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.MutationErrors.Add(1)
		return
	}
	b.MutationValues.Add(int64(count))
}

// RecordDerive implements MetricsCollector.
func (b *BasicMetricsCollector) RecordDerive(op Op, size int, duration time.Duration, err error) {
	b.DeriveCount.Add(1)
	b.DeriveTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.DeriveErrors.Add(1)
		return
	}
	b.DerivedValues.Add(int64(size))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		MutationCount:    b.MutationCount.Load(),
		MutationValues:   b.MutationValues.Load(),
		MutationErrors:   b.MutationErrors.Load(),
		MutationAvgNanos: avg(b.MutationTotalNanos.Load(), b.MutationCount.Load()),
		DeriveCount:      b.DeriveCount.Load(),
		DeriveErrors:     b.DeriveErrors.Load(),
		DerivedValues:    b.DerivedValues.Load(),
		DeriveAvgNanos:   avg(b.DeriveTotalNanos.Load(), b.DeriveCount.Load()),
	}
}

func avg(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	MutationCount    int64
	MutationValues   int64
	MutationErrors   int64
	MutationAvgNanos int64
	DeriveCount      int64
	DeriveErrors     int64
	DerivedValues    int64
	DeriveAvgNanos   int64
}
