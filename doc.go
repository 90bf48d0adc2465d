// Package primego computes the n-th prime number.
//
// Ranks are zero-based: rank 0 is 2, rank 9 is 29 and rank 10000 is 104743.
// Negative ranks are treated as rank 0.
//
// # Quick Start
//
//	p, err := primego.NthPrime(10000) // 104743
//
// For tuning, logging or metrics build a Sieve:
//
//	s, err := primego.New(
//	    primego.WithThreshold(5_000_000),
//	    primego.WithMemoryLimit(64<<20),
//	    primego.WithLogLevel(slog.LevelDebug),
//	)
//	p, err := s.NthPrime(ctx, 50_000_000)
//
// # Strategies
//
// Two sieves of Eratosthenes share one bound estimate
// U = n * (ln n + ln ln n + 2), which always exceeds the prime of rank n:
//
//   - Dense: one bit buffer over [0, U]. Fast, O(U) memory.
//   - Segmented: base primes up to sqrt(U), then fixed-size windows over
//     [2, U]. O(window + sqrt(U)) memory.
//
// Ranks at or above the threshold (default 10,000,000) use the segmented
// sieve. When a memory limit is configured and the dense buffer does not
// fit, the segmented sieve is used instead; both return the same prime.
//
// # Enumerating Ranges
//
//	for p, err := range s.Primes(ctx, 1000, 2000) {
//	    if err != nil {
//	        return err
//	    }
//	    fmt.Println(p)
//	}
//
// # Errors
//
// A bound that turns out too small is an internal invariant violation and
// is reported as *BoundExhaustedError (errors.Is ErrBoundExhausted), never as
// a sentinel prime. WithBoundRetry retries such a call once with a doubled
// bound.
package primego
