// Package strictvec provides runtime type-checked vectors for Go.
//
// A Vector stores values of type any but guarantees that every element
// satisfies one validation Strategy. Strategies are either fixed at
// definition (a scalar kind, an exact object type) or dynamic, binding to the
// type of the first value admitted.
//
// # Quick Start
//
//	ints, _ := strictvec.NewIntVec(19567, 21541, 80)
//	last, _ := ints.Get(-1)          // 80
//	_ = ints.Set(-1, 8000)           // writes index 2
//	err := ints.Push("nope")         // errors.Is(err, strictvec.ErrTypeMismatch)
//
//	vec, _ := strictvec.NewVec()     // unbound
//	_ = vec.Push("q", "w")           // bound to string
//
// # Strategies
//
//	StrictScalar(kind)               fixed scalar kind
//	StrictNonNegative(kind)          fixed kind, values >= 0
//	StrictObject(type)               exact dynamic type
//	Conforming(type)                 assignable to a type or interface
//	DynamicStrict()                  bind to the first value
//	DynamicLenient()                 bind, then narrow shared capabilities
//	.AsOptional()                    always admit nil
//
// Lenient vectors intersect the capability profile (own type, embedded
// struct types and registered interfaces) of every admitted object and reject
// an object that would leave the intersection empty. See package capability.
//
// # Indexes
//
// Negative indexes count from the end. Reads report absence with a bool and
// never fail for a missing index. Writes fail with ErrIndexOutOfRange unless
// the index exists or equals Size(), which appends.
//
// # Batches
//
// New, Push, Unshift, Insert and Merge validate every value before committing
// anything. A rejected batch leaves the vector, including its bound type,
// unchanged.
//
// # Iteration
//
// Rewind/Valid/Current/Key/Next and All walk the vector with a per-instance
// cursor over live storage. Writes between steps are visible to the rest of
// the iteration.
//
// # Set Operations
//
// Difference, Intersection and Merge accept any Enumerable, []any,
// iter.Seq[any], iter.Seq2[int, any] or slice/array value. Integers compare by
// numeric value, pointers by identity, slices and maps structurally.
package strictvec
