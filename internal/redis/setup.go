package redis

import (
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Logger defines the interface for logging operations in the redis package.
// This interface allows the package to use any logging implementation that
// conforms to these methods.
type Logger interface {
	Info(msg string, err error, fields ...map[string]interface{})
	Debug(msg string, err error, fields ...map[string]interface{})
	Warn(msg string, err error, fields ...map[string]interface{})
	Error(msg string, err error, fields ...map[string]interface{})
}

// Client wraps the go-redis client with the small surface this service
// needs: liveness probes and atomic fixed-window counters.
//
// Client implements the Store interface.
type Client struct {
	client *redis.Client
	logger Logger
}

// NewClient creates and initializes a new store client with the provided
// configuration. This is for connecting to a standalone Redis instance;
// the service holds exactly one of these for its whole lifetime.
//
// Example:
//
//	client, err := redis.NewClient(redis.Config{
//		Host: "localhost",
//		Port: 6379,
//	}, log)
//	if err != nil {
//		return nil, err
//	}
//	defer client.Close()
func NewClient(cfg Config, logger Logger) (*Client, error) {
	// Apply defaults
	if cfg.Host == "" {
		cfg.Host = DefaultHost
	}
	if cfg.Port == 0 {
		cfg.Port = DefaultPort
	}
	if cfg.MaxRetries == 0 {
		cfg.MaxRetries = DefaultMaxRetries
	}
	if cfg.DialTimeout == 0 {
		cfg.DialTimeout = DefaultDialTimeout
	}
	if cfg.ReadTimeout == 0 {
		cfg.ReadTimeout = DefaultReadTimeout
	}
	if cfg.WriteTimeout == 0 {
		cfg.WriteTimeout = cfg.ReadTimeout
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Username:     cfg.Username,
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     cfg.PoolSize,
		MaxRetries:   cfg.MaxRetries,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	})

	return &Client{
		client: rdb,
		logger: logger,
	}, nil
}

// Close releases the underlying connection pool.
func (c *Client) Close() error {
	if c.client == nil {
		return ErrClosed
	}
	return c.client.Close()
}
