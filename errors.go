package primego

import (
	"errors"
	"fmt"

	"github.com/hupe1980/primego/internal/resource"
	"github.com/hupe1980/primego/internal/sieve"
)

var (
	// ErrBoundExhausted is returned when a sieve scanned its whole bound
	// without reaching the requested rank.
	ErrBoundExhausted = errors.New("bound exhausted")

	// ErrRankOutOfRange is returned for ranks above MaxRank.
	ErrRankOutOfRange = errors.New("rank out of range")

	// ErrValueOutOfRange is returned for ranges ending above MaxValue.
	ErrValueOutOfRange = errors.New("value out of range")

	// ErrMemoryLimitExceeded is returned when not even a single segmented
	// window fits in the configured memory limit.
	ErrMemoryLimitExceeded = resource.ErrMemoryLimitExceeded
)

// BoundExhaustedError reports a bound estimate that was too small for a rank.
//
// It matches ErrBoundExhausted via errors.Is. The original underlying error
// can be accessed via errors.Unwrap.
type BoundExhaustedError struct {
	Rank     uint64
	Bound    uint64
	Strategy Strategy
	cause    error
}

func (e *BoundExhaustedError) Error() string {
	return fmt.Sprintf("bound exhausted: rank %d not reached within %d (%s)", e.Rank, e.Bound, e.Strategy)
}

// Is reports whether target is ErrBoundExhausted.
func (e *BoundExhaustedError) Is(target error) bool { return target == ErrBoundExhausted }

func (e *BoundExhaustedError) Unwrap() error { return e.cause }

// ErrInvalidOption indicates an option value New cannot accept.
type ErrInvalidOption struct {
	Name  string
	Value any
}

func (e *ErrInvalidOption) Error() string {
	return fmt.Sprintf("invalid option %s: %v", e.Name, e.Value)
}

func translateError(err error, rank, limit uint64, strategy Strategy) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sieve.ErrBoundExhausted) {
		return &BoundExhaustedError{Rank: rank, Bound: limit, Strategy: strategy, cause: err}
	}

	return err
}
