package strictvec

import "iter"

// The iteration protocol is live: every step reads the current storage, so
// writes made between steps are visible to the remaining iteration. Delete
// moves the cursor back when it removes the element under or before it, so
// removing the current element does not skip its successor.

// Rewind moves the cursor to the first element.
func (v *Vector) Rewind() {
	v.cursor = 0
}

// Valid reports whether the cursor points at an element.
func (v *Vector) Valid() bool {
	return v.cursor >= 0 && v.cursor < len(v.items)
}

// Current returns the element under the cursor, or nil when !Valid().
func (v *Vector) Current() any {
	if !v.Valid() {
		return nil
	}
	return v.items[v.cursor]
}

// Key returns the cursor position.
func (v *Vector) Key() int {
	return v.cursor
}

// Next advances the cursor.
func (v *Vector) Next() {
	v.cursor++
}

// All rewinds the vector and yields index/value pairs using the vector's own
// cursor, following the live iteration rules above.
//
//	for i, val := range vec.All() {
//	    ...
//	}
func (v *Vector) All() iter.Seq2[int, any] {
	return func(yield func(int, any) bool) {
		for v.Rewind(); v.Valid(); v.Next() {
			if !yield(v.Key(), v.Current()) {
				return
			}
		}
	}
}
