package random

import "errors"

// Bounds errors, returned by every sampling and shuffling routine in this
// package that can be called with inconsistent parameters.
var (
	ErrNonPositiveSize  = errors.New("random: size must be positive")
	ErrSizeExceedsTotal = errors.New("random: size must not exceed total")
	ErrEmptyWeights     = errors.New("random: parts must be non-empty")
	ErrNegativeWeight   = errors.New("random: parts must not contain a negative weight")
	ErrZeroTotalWeight  = errors.New("random: parts must sum to a positive weight")
	ErrNoDerangement    = errors.New("random: no derangement exists for n == 1")
)
