// Package testutil provides testing utilities for strictvec.
//
// This package is intended for use in tests and examples only.
// It provides a deterministic random source for property-style tests and a
// small family of fixture types with known embedding and interface
// relationships for exercising lenient (capability-narrowing) vectors.
//
// # Random Values
//
//	rng := testutil.NewRNG(seed)
//	ints := rng.Ints(32, 100)     // values in [0, 100)
//	strs := rng.Strings(8, 4)     // 8 strings of length 4
//
// # Fixtures
//
//	Alpha, Beta: embed Base, implement Named and Sized
//	Gamma:       implements Sized only
//	Delta:       implements Tagged only
//
// Register FixtureInterfaces() on a capability table before using them with
// lenient vectors.
package testutil
