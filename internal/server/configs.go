package server

import (
	"os"
	"strings"
)

// Defaults for the HTTP server.
const (
	DefaultAddr    = ":8000"
	DefaultVersion = "0.1.0"
)

// Config defines the configuration for the HTTP server.
type Config struct {
	// Addr is the listen address, e.g. ":8000".
	Addr string

	// ServiceName is reported by the root endpoint.
	ServiceName string

	// Version is reported by the root endpoint.
	Version string

	// CORSOrigins is the list of allowed origins. ["*"] allows any.
	CORSOrigins []string
}

// NewConfig reads the server configuration from environment variables.
func NewConfig() Config {
	cfg := Config{
		Addr:        os.Getenv("EMBEDSERVE_ADDR"),
		ServiceName: os.Getenv("EMBEDSERVE_SERVICE_NAME"),
		Version:     os.Getenv("EMBEDSERVE_VERSION"),
		CORSOrigins: []string{"*"},
	}

	if cfg.Addr == "" {
		cfg.Addr = DefaultAddr
	}
	if cfg.ServiceName == "" {
		cfg.ServiceName = "embedserve"
	}
	if cfg.Version == "" {
		cfg.Version = DefaultVersion
	}
	if v := os.Getenv("EMBEDSERVE_CORS_ORIGINS"); v != "" {
		origins := strings.Split(v, ",")
		for i := range origins {
			origins[i] = strings.TrimSpace(origins[i])
		}
		cfg.CORSOrigins = origins
	}

	return cfg
}
