package tracer

import "os"

// Config defines the configuration for the tracer.
type Config struct {
	// ServiceName identifies this service in exported traces.
	ServiceName string

	// AppEnv is the deployment environment tag (e.g. "production").
	AppEnv string

	// EnableExport controls whether spans are exported over OTLP HTTP.
	// When false the provider still creates spans, it just never ships
	// them anywhere, which keeps handler instrumentation unconditional.
	EnableExport bool
}

// NewConfig reads the tracer configuration from environment variables.
// The OTLP endpoint itself is configured through the standard
// OTEL_EXPORTER_OTLP_* variables understood by the exporter.
func NewConfig() Config {
	service := os.Getenv("EMBEDSERVE_SERVICE_NAME")
	if service == "" {
		service = "embedserve"
	}

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "development"
	}

	return Config{
		ServiceName:  service,
		AppEnv:       env,
		EnableExport: os.Getenv("TRACING_ENABLE_EXPORT") == "true",
	}
}
