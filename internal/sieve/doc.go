// Package sieve enumerates primes with the sieve of Eratosthenes.
//
// Everything is built on one primitive, the Window: a bit buffer over a
// contiguous range [low, high] in which a set bit marks a known composite.
// Striking a prime p marks its multiples from max(p*p, first multiple >= low)
// through high.
//
// Two regimes use it:
//
//   - Dense sieves a single window over [0, U] in place. Memory is O(U).
//   - Segmented first collects the base primes up to sqrt(U) with a dense
//     window, then sweeps [2, U] in fixed-size windows, striking each window
//     with the base primes before counting it. Memory is O(W + sqrt(U)).
//
// Ranks are zero-based: rank 0 is 2.
//
// Buffers are allocated per call (dense) or per window (segmented) and
// never shared, so all functions are safe for concurrent use.
package sieve
