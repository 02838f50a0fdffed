// Package strictvec provides runtime type-checked vectors.
//
// This file implements the fluent builder API for creating and configuring
// vectors. Builders are immutable - each method returns a new builder with
// the updated configuration.
package strictvec

import (
	"time"

	"github.com/hupe1980/strictvec/capability"
)

var noopLogger = NoopLogger()

// New creates a vector governed by s holding values.
// It is shorthand for For(s).Build(values...).
func New(s Strategy, values ...any) (*Vector, error) {
	return For(s).Build(values...)
}

// MustNew is like New but panics if a value is rejected.
func MustNew(s Strategy, values ...any) *Vector {
	v, err := New(s, values...)
	if err != nil {
		panic(err)
	}
	return v
}

// For creates a new vector builder for the strategy s.
//
// Example:
//
//	vec, err := strictvec.For(strictvec.DynamicLenient()).
//	    Capabilities(table).
//	    Logger(strictvec.NewTextLogger(slog.LevelDebug)).
//	    Metrics(&strictvec.BasicMetricsCollector{}).
//	    Build(a, b, c)
func For(s Strategy) Builder {
	return Builder{strategy: s}
}

// Builder is an immutable fluent builder for vectors.
type Builder struct {
	strategy Strategy
	table    *capability.Table
	logger   *Logger
	metrics  MetricsCollector
}

// Capabilities sets the capability table used by lenient strategies.
// Default: capability.Default.
func (b Builder) Capabilities(t *capability.Table) Builder {
	b.table = t
	return b
}

// Logger sets the structured logger for operation tracing.
func (b Builder) Logger(l *Logger) Builder {
	b.logger = l
	return b
}

// Metrics sets the metrics collector for monitoring.
func (b Builder) Metrics(mc MetricsCollector) Builder {
	b.metrics = mc
	return b
}

// Build validates values in order and returns a vector holding them. The
// first rejected value aborts construction and no vector is returned.
func (b Builder) Build(values ...any) (*Vector, error) {
	v := &Vector{
		strategy: b.strategy,
		state:    b.strategy.initialState(),
		table:    b.table,
		logger:   noopLogger,
		metrics:  b.metrics,
	}
	if v.table == nil {
		v.table = capability.Default
	}
	if b.logger != nil {
		v.logger = b.logger.WithStrategy(b.strategy)
	}
	if v.metrics == nil {
		v.metrics = NoopMetricsCollector{}
	}

	start := time.Now()
	st, err := v.stage(values...)
	if err != nil {
		return nil, v.observe(OpConstruct, len(values), start, err)
	}
	v.items = append(make([]any, 0, len(values)), values...)
	v.state = st
	return v, v.observe(OpConstruct, len(values), start, nil)
}
