package bound

import "math"

// SmallBound covers every rank below SmallRank (the tenth prime is 29).
const SmallBound = 30

// SmallRank is the first rank estimated with the logarithmic formula.
const SmallRank = 10

// Estimate returns an upper bound U such that [0, U] contains at least n+1 primes.
// The result saturates at math.MaxUint64.
func Estimate(n uint64) uint64 {
	if n < SmallRank {
		return SmallBound
	}

	m := float64(n)
	u := math.Ceil(m * (math.Log(m) + math.Log(math.Log(m)) + 2))

	// float64(math.MaxUint64) rounds up to 2^64, so >= is the overflow test.
	if u >= float64(math.MaxUint64) {
		return math.MaxUint64
	}
	return uint64(u)
}

// Inflate doubles a bound, saturating at math.MaxUint64.
func Inflate(u uint64) uint64 {
	if u > math.MaxUint64/2 {
		return math.MaxUint64
	}
	return u * 2
}

// Sqrt returns floor(sqrt(u)).
func Sqrt(u uint64) uint64 {
	r := uint64(math.Sqrt(float64(u)))

	// The float64 approximation can be off by one in either direction.
	for r > 0 && (r > math.MaxUint32 || r*r > u) {
		r--
	}
	for r+1 <= math.MaxUint32 && (r+1)*(r+1) <= u {
		r++
	}
	return r
}
