// Package conv provides safe integer conversion utilities.
//
// These functions perform bounds checking to prevent integer overflow
// when turning dynamically typed index values into Go ints, and provide the
// order-preserving int64 to uint64 mapping used by integer bitmaps.
//
// For conversions that are provably safe by domain constraints (e.g., loop
// indices, bounded counters), use direct type casts instead.
package conv
