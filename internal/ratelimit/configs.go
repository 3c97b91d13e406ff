package ratelimit

import (
	"os"
	"strconv"
	"time"
)

// Defaults for the limiter.
const (
	DefaultPerMinute    = 10
	DefaultWindow       = time.Minute
	DefaultStoreTimeout = 300 * time.Millisecond
)

// Config defines the configuration for the rate limiter.
type Config struct {
	// PerWindow is the number of requests each client key may make
	// within one window. Default: 10.
	PerWindow int64

	// Window is the fixed accounting window length. Default: one minute.
	Window time.Duration

	// StoreTimeout bounds the store round trip for a single limit check
	// so a degraded store cannot stall the request pipeline.
	// Default: 300ms.
	StoreTimeout time.Duration
}

// NewConfig reads the limiter configuration from environment variables.
func NewConfig() Config {
	cfg := Config{
		PerWindow:    DefaultPerMinute,
		Window:       DefaultWindow,
		StoreTimeout: DefaultStoreTimeout,
	}

	if v := os.Getenv("EMBEDSERVE_RATE_LIMIT_PER_MIN"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			cfg.PerWindow = n
		}
	}

	return cfg
}
