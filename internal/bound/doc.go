// Package bound estimates how far a sieve must reach to contain the n-th prime.
//
// The estimate comes from the prime number theorem. For rank n (zero-based)
// the (n+1)-th prime is bounded above by
//
//	n * (ln n + ln ln n + 2)
//
// which is a deliberate overestimate. Small ranks use a fixed bound so the
// logarithms never see values near zero or one.
package bound
