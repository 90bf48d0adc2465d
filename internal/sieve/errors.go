package sieve

import "errors"

var (
	// ErrBoundExhausted is returned when a sieve scanned its whole bound
	// without reaching the requested rank. It means the bound was too small.
	ErrBoundExhausted = errors.New("sieve: bound exhausted before rank was reached")

	// ErrWindowTooLarge is returned when a window exceeds MaxWindowLen.
	ErrWindowTooLarge = errors.New("sieve: window too large for this platform")
)
