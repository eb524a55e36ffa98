// Package testutil provides testing utilities for bitvec.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded, thread-safe RNG and generators for random bit
// patterns in the '0'/'1' string form accepted by bitvec.Parse.
//
// # Random Patterns
//
//	rng := testutil.NewRNG(seed)
//	s := rng.BitString(130)          // uniform bits
//	s = rng.SparseBitString(130, .1) // ~10% ones
//	v, _ := bitvec.Parse(s)
package testutil
