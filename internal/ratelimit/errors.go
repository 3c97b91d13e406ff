package ratelimit

import "errors"

var (
	// ErrRateLimitExceeded is returned when the caller has exhausted its
	// quota for the current window.
	ErrRateLimitExceeded = errors.New("ratelimit: rate limit exceeded")

	// ErrStoreUnavailable is returned when the counter store cannot be
	// reached. Requests are rejected in this state (fail-closed).
	ErrStoreUnavailable = errors.New("ratelimit: counter store unavailable")
)
