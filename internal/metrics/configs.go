package metrics

import "os"

// Config defines the configuration for the metrics registry.
type Config struct {
	// ServiceName identifies the service exposing metrics. It is applied
	// as a constant "service" label on every metric.
	ServiceName string

	// EnableDefaultCollectors controls whether the built-in Go runtime
	// and process collectors are registered alongside the service's own
	// metrics. Default: true.
	EnableDefaultCollectors bool
}

// NewConfig reads the metrics configuration from environment variables.
func NewConfig() Config {
	service := os.Getenv("EMBEDSERVE_SERVICE_NAME")
	if service == "" {
		service = "embedserve"
	}

	return Config{
		ServiceName:             service,
		EnableDefaultCollectors: os.Getenv("METRICS_DISABLE_DEFAULT_COLLECTORS") == "",
	}
}
