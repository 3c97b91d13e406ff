package redis

import (
	"context"
	"time"
)

// Store provides the store operations this service actually issues:
// liveness probes, fixed-window counter increments, and a handful of
// key operations used by tests and diagnostics.
//
// This interface is implemented by the concrete *Client type.
type Store interface {
	// Connection and lifecycle
	Ping(ctx context.Context) error
	Close() error

	// Key operations
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) (int64, error)
	TTL(ctx context.Context, key string) (time.Duration, error)

	// Counter operations
	Incr(ctx context.Context, key string) (int64, error)

	// IncrWindow atomically increments the counter for key, attaching a
	// TTL of window on the first increment, and returns the post-increment
	// count. It is the store-side primitive behind fixed-window rate
	// limiting.
	IncrWindow(ctx context.Context, key string, window time.Duration) (int64, error)
}
