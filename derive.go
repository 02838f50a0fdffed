package strictvec

import (
	"runtime"
	"time"

	"github.com/hupe1980/strictvec/internal/membership"
	"github.com/hupe1980/strictvec/typestate"
	"golang.org/x/sync/errgroup"
)

// parallelSetThreshold is the total number of source values above which
// membership sets for several sources are built concurrently.
const parallelSetThreshold = 1 << 14

// Derived vectors share nothing with their source: they get their own
// storage, a rewound cursor and a copy of the source's bound type. Later
// binding or narrowing of either vector does not affect the other.

// Clone returns an independent copy of v.
func (v *Vector) Clone() *Vector {
	start := time.Now()
	out := v.derive(v.Values(), v.state)
	v.observeDerive(OpClone, 0, out, start, nil)
	return out
}

// Slice returns a new vector holding up to length elements starting at
// start. A negative start counts from the end; a negative length stops that
// many elements before the end. Out-of-range bounds are clamped.
func (v *Vector) Slice(start, length int) *Vector {
	lo, hi := sliceBounds(len(v.items), start, &length)
	return v.slice(lo, hi)
}

// SliceFrom returns a new vector holding every element from start, which
// may be negative, to the end.
func (v *Vector) SliceFrom(start int) *Vector {
	lo, hi := sliceBounds(len(v.items), start, nil)
	return v.slice(lo, hi)
}

func (v *Vector) slice(lo, hi int) *Vector {
	begin := time.Now()
	items := make([]any, hi-lo)
	copy(items, v.items[lo:hi])
	out := v.derive(items, v.state)
	v.observeDerive(OpSlice, 0, out, begin, nil)
	return out
}

// sliceBounds returns the [lo, hi) range selected by start and length in a
// sequence of n elements. A nil length selects through the end.
func sliceBounds(n, start int, length *int) (lo, hi int) {
	switch {
	case start > n:
		return n, n
	case start < 0:
		start = max(n+start, 0)
	}

	hi = n
	if length != nil {
		switch l := *length; {
		case l < 0:
			hi = max(n+l, start)
		case l < n-start:
			hi = start + l
		}
	}
	return start, hi
}

// Difference returns a new vector with the elements of v that appear in none
// of the sources, in v's order. See materialize for accepted sources.
func (v *Vector) Difference(sources ...any) (*Vector, error) {
	return v.filter(OpDifference, sources, func(sets []*membership.Set, val any) bool {
		for _, s := range sets {
			if s.Contains(val) {
				return false
			}
		}
		return true
	})
}

// Intersection returns a new vector with the elements of v that appear in
// every source, in v's order.
func (v *Vector) Intersection(sources ...any) (*Vector, error) {
	return v.filter(OpIntersection, sources, func(sets []*membership.Set, val any) bool {
		for _, s := range sets {
			if !s.Contains(val) {
				return false
			}
		}
		return true
	})
}

func (v *Vector) filter(op Op, sources []any, keep func([]*membership.Set, any) bool) (*Vector, error) {
	start := time.Now()
	lists, err := materializeAll(sources)
	if err != nil {
		v.observeDerive(op, len(sources), nil, start, err)
		return nil, err
	}

	sets := buildSets(lists)

	items := make([]any, 0, len(v.items))
	for _, val := range v.items {
		if keep(sets, val) {
			items = append(items, val)
		}
	}

	out := v.derive(items, v.state)
	v.observeDerive(op, len(sources), out, start, nil)
	return out, nil
}

// buildSets indexes every materialized source. Sources are already copied
// into plain slices, so no caller code runs on the worker goroutines.
func buildSets(lists [][]any) []*membership.Set {
	sets := make([]*membership.Set, len(lists))

	total := 0
	for _, l := range lists {
		total += len(l)
	}
	if len(lists) < 2 || total < parallelSetThreshold {
		for i, l := range lists {
			sets[i] = membership.New(l)
		}
		return sets
	}

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, l := range lists {
		g.Go(func() error {
			sets[i] = membership.New(l)
			return nil
		})
	}
	_ = g.Wait()
	return sets
}

// Merge returns a new vector holding v's elements followed by the values of
// each source in argument order. All appended values are validated against
// the copy's bound type; on error no vector is returned.
func (v *Vector) Merge(sources ...any) (*Vector, error) {
	start := time.Now()
	lists, err := materializeAll(sources)
	if err != nil {
		v.observeDerive(OpMerge, len(sources), nil, start, err)
		return nil, err
	}

	out := v.derive(v.Values(), v.state)
	var batch []any
	for _, l := range lists {
		batch = append(batch, l...)
	}
	st, err := out.stage(batch...)
	if err != nil {
		v.observeDerive(OpMerge, len(sources), nil, start, err)
		return nil, err
	}
	out.items = append(out.items, batch...)
	out.state = st

	v.observeDerive(OpMerge, len(sources), out, start, nil)
	return out, nil
}

func (v *Vector) derive(items []any, st typestate.State) *Vector {
	return &Vector{
		items:    items,
		strategy: v.strategy,
		state:    st.Clone(),
		table:    v.table,
		logger:   v.logger,
		metrics:  v.metrics,
	}
}

func (v *Vector) observeDerive(op Op, sources int, out *Vector, start time.Time, err error) {
	size := 0
	if out != nil {
		size = out.Size()
	}
	v.collector().RecordDerive(op, size, time.Since(start), err)
	v.log().LogDerive(op, sources, size, err)
}
