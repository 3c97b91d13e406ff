package redis

import (
	"os"
	"strconv"
	"time"
)

// Default connection settings.
const (
	DefaultHost        = "localhost"
	DefaultPort        = 6379
	DefaultMaxRetries  = 3
	DefaultDialTimeout = 5 * time.Second
	DefaultReadTimeout = 3 * time.Second
)

// Config defines the configuration for the store client.
type Config struct {
	// Host is the Redis server hostname or IP address.
	// Default: "localhost"
	Host string

	// Port is the Redis server port.
	// Default: 6379
	Port int

	// Username is the Redis username for ACL authentication (Redis 6.0+).
	// Leave empty for no username-based authentication.
	Username string

	// Password is the Redis password for authentication.
	// Leave empty for no authentication.
	Password string

	// DB is the Redis database number to use.
	// Default: 0
	DB int

	// PoolSize is the maximum number of socket connections.
	// Default: 10 per CPU (go-redis default)
	PoolSize int

	// MaxRetries is the maximum number of retries before giving up.
	// Default: 3
	MaxRetries int

	// DialTimeout is the timeout for establishing new connections.
	// Default: 5 seconds
	DialTimeout time.Duration

	// ReadTimeout is the timeout for socket reads. Commands fail with a
	// timeout instead of blocking when it is reached.
	// Default: 3 seconds
	ReadTimeout time.Duration

	// WriteTimeout is the timeout for socket writes.
	// Default: ReadTimeout
	WriteTimeout time.Duration
}

// NewConfig reads the store configuration from environment variables.
func NewConfig() Config {
	cfg := Config{
		Host:     os.Getenv("REDIS_HOST"),
		Password: os.Getenv("REDIS_PASSWORD"),
		Username: os.Getenv("REDIS_USERNAME"),
	}

	if v := os.Getenv("REDIS_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Port = n
		}
	}
	if v := os.Getenv("REDIS_DB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.DB = n
		}
	}

	return cfg
}
