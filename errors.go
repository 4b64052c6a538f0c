package cache

import "errors"

var (
	// ErrExceedsMaximumWeight is returned by Insert when a value reports a
	// weight above the per-item maximum. The cache is left untouched.
	ErrExceedsMaximumWeight = errors.New("cache: value weight exceeds maximum item weight")

	// ErrNonsenseParameters is returned by New when the requested entry count
	// or per-item weight is not a usable bound.
	ErrNonsenseParameters = errors.New("cache: max count and max item weight must be at least 1")
)
