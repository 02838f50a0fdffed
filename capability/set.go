package capability

import (
	"reflect"
	"slices"
)

// Set is a set of capability identifiers.
type Set map[reflect.Type]struct{}

// NewSet creates a set holding the given identifiers.
func NewSet(ids ...reflect.Type) Set {
	s := make(Set, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Contains reports whether id is in the set.
func (s Set) Contains(id reflect.Type) bool {
	_, ok := s[id]
	return ok
}

// Len returns the number of identifiers in the set.
func (s Set) Len() int {
	return len(s)
}

// Clone returns a deep copy of the set.
func (s Set) Clone() Set {
	if s == nil {
		return nil
	}
	out := make(Set, len(s))
	for id := range s {
		out[id] = struct{}{}
	}
	return out
}

// Intersect returns a new set holding the identifiers present in both sets.
// Neither operand is modified.
func (s Set) Intersect(other Set) Set {
	small, large := s, other
	if len(large) < len(small) {
		small, large = large, small
	}
	out := make(Set, len(small))
	for id := range small {
		if _, ok := large[id]; ok {
			out[id] = struct{}{}
		}
	}
	return out
}

// Names returns the sorted string form of every identifier.
func (s Set) Names() []string {
	names := make([]string, 0, len(s))
	for id := range s {
		names = append(names, id.String())
	}
	slices.Sort(names)
	return names
}
