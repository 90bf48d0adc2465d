package testutil

import (
	"math/rand"
	"sort"
	"sync"
)

// KnownRank pairs a zero-based rank with its published prime.
type KnownRank struct {
	Rank  int64
	Prime uint64
}

// KnownRanks holds published values of the n-th prime, converted to
// zero-based ranks (rank 999 is the 1000th prime).
var KnownRanks = []KnownRank{
	{0, 2},
	{9, 29},
	{99, 541},
	{999, 7919},
	{9999, 104729},
	{10000, 104743},
	{99999, 1299709},
	{999999, 15485863},
	{9999999, 179424673},
}

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Int63n returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Int63n(n int64) int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Int63n(n)
}

// Ranks returns num pseudo-random ranks in [0, maxRank), sorted ascending.
func (r *RNG) Ranks(num int, maxRank int64) []int64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]int64, num)
	for i := range out {
		out[i] = r.rand.Int63n(maxRank)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// IsPrime reports whether v is prime by trial division.
func IsPrime(v uint64) bool {
	if v < 2 {
		return false
	}
	if v%2 == 0 {
		return v == 2
	}
	for d := uint64(3); d*d <= v; d += 2 {
		if v%d == 0 {
			return false
		}
	}
	return true
}

// PrimesBetween returns the primes in [low, high] by trial division.
func PrimesBetween(low, high uint64) []uint64 {
	var out []uint64
	for v := low; v <= high; v++ {
		if IsPrime(v) {
			out = append(out, v)
		}
		if v == high {
			break
		}
	}
	return out
}
