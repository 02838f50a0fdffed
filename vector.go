package strictvec

import (
	"slices"
	"time"

	"github.com/hupe1980/strictvec/capability"
	"github.com/hupe1980/strictvec/typestate"
)

// Vector is an ordered, contiguous sequence of dynamically typed values that
// all satisfy one Strategy.
//
// Every write validates its values before touching storage. Multi-value
// writes are all-or-nothing: a rejected batch leaves both the elements and
// the bound type unchanged. Reads never fail for a missing index; they report
// absence instead.
//
// Create vectors with New or For(...).Build. The zero value is an empty
// vector that rejects every value.
//
// A Vector is not safe for concurrent use.
type Vector struct {
	items    []any
	cursor   int
	strategy Strategy
	state    typestate.State
	table    *capability.Table
	logger   *Logger
	metrics  MetricsCollector
}

// Size returns the number of elements.
func (v *Vector) Size() int {
	return len(v.items)
}

// Strategy returns the validation strategy the vector was built with.
func (v *Vector) Strategy() Strategy {
	return v.strategy
}

// State returns a copy of the type the vector is currently bound to.
func (v *Vector) State() typestate.State {
	return v.state.Clone()
}

// Values returns a copy of the elements in order.
func (v *Vector) Values() []any {
	out := make([]any, len(v.items))
	copy(out, v.items)
	return out
}

// Exists reports whether index i, negative counting from the end, holds an
// element.
func (v *Vector) Exists(i int) bool {
	r := v.resolve(i)
	return r >= 0 && r < len(v.items)
}

// Get returns the element at index i, negative counting from the end.
// The bool is false when the index does not exist.
func (v *Vector) Get(i int) (any, bool) {
	if !v.Exists(i) {
		return nil, false
	}
	return v.items[v.resolve(i)], true
}

// GetAs returns the element at index i asserted to T.
func GetAs[T any](v *Vector, i int) (T, bool) {
	val, ok := v.Get(i)
	if !ok {
		var zero T
		return zero, false
	}
	t, ok := val.(T)
	return t, ok
}

// Set writes val at index i. i may be negative, or equal to Size() to append.
func (v *Vector) Set(i int, val any) error {
	start := time.Now()
	st, err := v.stage(val)
	if err != nil {
		return v.observe(OpSet, 1, start, err)
	}
	return v.commitSet(i, val, st, start)
}

// Append writes val after the last element.
func (v *Vector) Append(val any) error {
	start := time.Now()
	st, err := v.stage(val)
	if err != nil {
		return v.observe(OpSet, 1, start, err)
	}
	v.items = append(v.items, val)
	v.state = st
	return v.observe(OpSet, 1, start, nil)
}

func (v *Vector) commitSet(i int, val any, st typestate.State, start time.Time) error {
	switch r := v.resolve(i); {
	case r == len(v.items):
		v.items = append(v.items, val)
	case r >= 0 && r < len(v.items):
		v.items[r] = val
	default:
		return v.observe(OpSet, 1, start, &IndexOutOfRangeError{Index: i, Size: len(v.items)})
	}
	v.state = st
	return v.observe(OpSet, 1, start, nil)
}

// Delete removes the element at index i and shifts later elements down.
// It does nothing when the index does not exist.
func (v *Vector) Delete(i int) {
	start := time.Now()
	if !v.Exists(i) {
		_ = v.observe(OpDelete, 0, start, nil)
		return
	}
	v.deleteAt(v.resolve(i))
	_ = v.observe(OpDelete, 1, start, nil)
}

// deleteAt removes index r and keeps an in-progress iteration aligned with
// the shifted storage.
func (v *Vector) deleteAt(r int) {
	v.items = slices.Delete(v.items, r, r+1)
	if v.cursor >= r {
		v.cursor--
	}
}

// Push appends values in argument order.
func (v *Vector) Push(values ...any) error {
	start := time.Now()
	st, err := v.stage(values...)
	if err != nil {
		return v.observe(OpPush, len(values), start, err)
	}
	v.items = append(v.items, values...)
	v.state = st
	return v.observe(OpPush, len(values), start, nil)
}

// Unshift prepends values, keeping their argument order.
func (v *Vector) Unshift(values ...any) error {
	start := time.Now()
	st, err := v.stage(values...)
	if err != nil {
		return v.observe(OpUnshift, len(values), start, err)
	}
	v.items = slices.Insert(v.items, 0, values...)
	v.state = st
	return v.observe(OpUnshift, len(values), start, nil)
}

// Pop removes and returns the last element.
func (v *Vector) Pop() (any, error) {
	start := time.Now()
	n := len(v.items)
	if n == 0 {
		return nil, v.observe(OpPop, 0, start, ErrUnderflow)
	}
	last := v.items[n-1]
	v.deleteAt(n - 1)
	return last, v.observe(OpPop, 1, start, nil)
}

// Shift removes and returns the first element.
func (v *Vector) Shift() (any, error) {
	start := time.Now()
	if len(v.items) == 0 {
		return nil, v.observe(OpShift, 0, start, ErrUnderflow)
	}
	first := v.items[0]
	v.deleteAt(0)
	return first, v.observe(OpShift, 1, start, nil)
}

// Insert splices values in before index, which may be negative. An index
// equal to Size() appends and an index of 0 prepends.
func (v *Vector) Insert(index int, values ...any) error {
	start := time.Now()
	n := len(v.items)
	r := v.resolve(index)
	if r < 0 || r > n {
		return v.observe(OpInsert, len(values), start, &IndexOutOfRangeError{Index: index, Size: n})
	}
	st, err := v.stage(values...)
	if err != nil {
		return v.observe(OpInsert, len(values), start, err)
	}
	v.items = slices.Insert(v.items, r, values...)
	v.state = st
	return v.observe(OpInsert, len(values), start, nil)
}

// Remove deletes the element at index and returns it.
func (v *Vector) Remove(index int) (any, error) {
	start := time.Now()
	if !v.Exists(index) {
		return nil, v.observe(OpRemove, 0, start, &IndexOutOfRangeError{Index: index, Size: len(v.items)})
	}
	r := v.resolve(index)
	val := v.items[r]
	v.deleteAt(r)
	return val, v.observe(OpRemove, 1, start, nil)
}

func (v *Vector) resolve(i int) int {
	if i < 0 {
		return len(v.items) + i
	}
	return i
}

// stage validates values in order against a scratch copy of the state.
// The current state is never modified; the caller commits the returned one.
func (v *Vector) stage(values ...any) (typestate.State, error) {
	// Capability sets are replaced on narrowing, never mutated, so a
	// shallow copy is enough here.
	next := v.state
	for _, val := range values {
		if err := v.strategy.admit(&next, v.capabilities(), val); err != nil {
			return v.state, err
		}
	}
	return next, nil
}

func (v *Vector) observe(op Op, count int, start time.Time, err error) error {
	v.collector().RecordMutation(op, count, time.Since(start), err)
	v.log().LogMutation(op, count, len(v.items), err)
	return err
}

func (v *Vector) capabilities() *capability.Table {
	if v.table == nil {
		return capability.Default
	}
	return v.table
}

func (v *Vector) collector() MetricsCollector {
	if v.metrics == nil {
		return NoopMetricsCollector{}
	}
	return v.metrics
}

func (v *Vector) log() *Logger {
	if v.logger == nil {
		return noopLogger
	}
	return v.logger
}
