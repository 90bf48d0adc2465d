package sieve

import (
	"iter"
	"math"

	"github.com/bits-and-blooms/bitset"
)

// Window is a sieve buffer over the closed range [low, high].
// Bit i corresponds to the value low+i; a set bit marks a composite.
type Window struct {
	low       uint64
	high      uint64
	composite *bitset.BitSet
}

// MaxWindowLen is the largest number of values one window can cover.
// Bit indexes are uint, so this is 2^32-1 on 32-bit platforms.
const MaxWindowLen = math.MaxUint

// Addressable reports whether a window of size values can be allocated.
func Addressable(size uint64) bool {
	return size <= MaxWindowLen
}

// NewWindow allocates a fresh window over [low, high] with every value
// considered prime, except 0 and 1 when they fall inside the range.
// high must not be less than low, and the window must be Addressable.
func NewWindow(low, high uint64) *Window {
	w := &Window{
		low:       low,
		high:      high,
		composite: bitset.New(uint(high - low + 1)),
	}
	for v := low; v <= high && v <= 1; v++ {
		w.composite.Set(uint(v - low))
	}
	return w
}

// Bytes returns the size in bytes of the buffer backing a window of size values.
func Bytes(size uint64) int64 {
	return int64((size + 63) / 64 * 8)
}

// Len returns the number of values covered by the window.
func (w *Window) Len() uint64 { return w.high - w.low + 1 }

// Strike marks every multiple of p inside the window as composite,
// starting at p*p or the first multiple of p not below low, whichever is larger.
// Smaller multiples carry a smaller prime factor and are struck by it.
func (w *Window) Strike(p uint64) {
	start := p * p
	if start < w.low {
		start = (w.low + p - 1) / p * p
	}
	if start > w.high {
		return
	}

	for v := start - w.low; v <= w.high-w.low; v += p {
		w.composite.Set(uint(v))
	}
}

// Sieve strikes the window with its own primes. The window must start at
// or below 2 so that every prime below sqrt(high) is inside it.
func (w *Window) Sieve() {
	for i := uint64(2); i*i <= w.high; i++ {
		if w.IsPrime(i) {
			w.Strike(i)
		}
	}
}

// IsPrime reports whether v lies inside the window and is not struck.
func (w *Window) IsPrime(v uint64) bool {
	if v < w.low || v > w.high {
		return false
	}
	return !w.composite.Test(uint(v - w.low))
}

// Count returns the number of values in the window not struck.
func (w *Window) Count() uint64 {
	return w.Len() - uint64(w.composite.Count())
}

// Select returns the k-th (zero-based) value in the window that is not struck.
// It reports false when the window holds k or fewer such values.
func (w *Window) Select(k uint64) (uint64, bool) {
	if k >= w.Count() {
		return 0, false
	}

	for v := range w.Primes() {
		if k == 0 {
			return v, true
		}
		k--
	}
	return 0, false
}

// Primes yields the values in the window that are not struck, in ascending order.
func (w *Window) Primes() iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		n := w.Len()
		for i, ok := w.composite.NextClear(0); ok && uint64(i) < n; i, ok = w.composite.NextClear(i + 1) {
			if !yield(w.low + uint64(i)) {
				return
			}
		}
	}
}
