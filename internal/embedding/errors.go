package embedding

import "errors"

var (
	// ErrInferenceFailed is returned for any backend failure. The raw
	// backend error is logged server-side and never attached to this
	// error, so nothing internal leaks to callers.
	ErrInferenceFailed = errors.New("embedding: inference failed")

	// ErrInconsistentDimension is returned when vectors within one call
	// come back with differing dimensions. This is an internal invariant
	// violation, not a user error.
	ErrInconsistentDimension = errors.New("embedding: inconsistent vector dimensions")
)
