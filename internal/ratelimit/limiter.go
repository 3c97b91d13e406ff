package ratelimit

import (
	"context"
	"fmt"
	"time"
)

// Store is the counter primitive the limiter needs from the key-value
// store. Implemented by the redis package's *Client.
type Store interface {
	IncrWindow(ctx context.Context, key string, window time.Duration) (int64, error)
}

// Logger defines the interface for logging operations in the ratelimit package.
type Logger interface {
	Warn(msg string, err error, fields ...map[string]interface{})
	Error(msg string, err error, fields ...map[string]interface{})
}

// Limiter applies a fixed-window quota per client key. It is stateless:
// every decision is a single atomic round trip to the store.
type Limiter struct {
	store  Store
	logger Logger
	cfg    Config
}

// NewLimiter constructs a Limiter from Config and a counter store.
func NewLimiter(cfg Config, store Store, logger Logger) *Limiter {
	if cfg.PerWindow <= 0 {
		cfg.PerWindow = DefaultPerMinute
	}
	if cfg.Window <= 0 {
		cfg.Window = DefaultWindow
	}
	if cfg.StoreTimeout <= 0 {
		cfg.StoreTimeout = DefaultStoreTimeout
	}

	return &Limiter{
		store:  store,
		logger: logger,
		cfg:    cfg,
	}
}

// Allow records one request for key and reports whether it fits within
// the current window's quota.
//
// The increment that tips the counter over the limit is not refunded;
// counter growth is bounded by the key's TTL, not by declining to count
// rejected calls. A store failure rejects the request (fail-closed),
// surfaced as ErrStoreUnavailable.
func (l *Limiter) Allow(ctx context.Context, key string) error {
	ctx, cancel := context.WithTimeout(ctx, l.cfg.StoreTimeout)
	defer cancel()

	count, err := l.store.IncrWindow(ctx, l.storageKey(key), l.cfg.Window)
	if err != nil {
		l.logger.Error("rate limit store round trip failed", err, map[string]interface{}{
			"client_key": key,
		})
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	if count > l.cfg.PerWindow {
		l.logger.Warn("rate limit exceeded", nil, map[string]interface{}{
			"client_key": key,
			"count":      count,
			"limit":      l.cfg.PerWindow,
		})
		return ErrRateLimitExceeded
	}

	return nil
}

func (l *Limiter) storageKey(key string) string {
	return "ratelimit:" + key
}

// ClientKey derives the accounting key for a request: the authenticated
// subject when available, otherwise the caller's network origin. The key
// is stable for the same caller across a window.
func ClientKey(subject, remoteAddr string) string {
	if subject != "" {
		return "sub:" + subject
	}
	return "addr:" + remoteAddr
}
