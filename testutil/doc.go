// Package testutil provides testing utilities for sortgo.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seedable thread-safe RNG and generators for the input
// shapes the sort cares about: random, sorted, reversed, duplicate-heavy
// and sawtooth sequences.
//
// # Dataset Generation
//
//	rng := testutil.NewRNG(seed)
//	data := rng.Ints(10000, 1<<20)        // uniform random
//	dups := rng.DuplicateInts(10000, 16)  // heavy duplication
//	desc := testutil.ReversedInts(1000)   // adversarial for first/last pivots
//
// # Permutation Checks
//
//	require.Equal(t, testutil.Counts(input), testutil.Counts(output))
package testutil
