// Package testutil provides testing utilities for primego.
//
// This package is intended for use in tests and benchmarks only.
// It provides a deterministic rank generator and ground truth computed
// independently of any sieve.
//
// # Random Rank Generation
//
//	rng := testutil.NewRNG(seed)
//	ranks := rng.Ranks(100, 50_000) // 100 ranks in [0, 50000)
//
// # Ground Truth
//
//	testutil.IsPrime(104743)          // trial division
//	testutil.PrimesBetween(90, 110)   // [97 101 103 107 109]
//	for _, k := range testutil.KnownRanks { ... }
package testutil
