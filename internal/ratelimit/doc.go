// Package ratelimit enforces a per-client fixed-window request quota.
//
// All accounting lives in the external store: the limiter issues a single
// atomic increment-with-TTL per request and compares the returned count
// against the configured limit. The limiter itself holds no state, which
// makes it trivially shareable across process instances.
//
// The limiter fails closed: if the store cannot be reached within the
// configured timeout, the request is rejected with ErrStoreUnavailable
// rather than allowed through unmetered.
package ratelimit
