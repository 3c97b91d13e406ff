package logger

import "os"

// Log level names accepted in configuration.
const (
	Debug   = "debug"
	Info    = "info"
	Warning = "warning"
	Error   = "error"
)

// Config defines the configuration for the logger.
type Config struct {
	// Level controls the minimum log level that is emitted.
	// One of: debug, info, warning, error. Default: info.
	Level string `yaml:"level" envconfig:"ZAP_LOGGER_LEVEL"`

	// ServiceName is attached to every log entry as the "service" field.
	ServiceName string `yaml:"service_name" envconfig:"EMBEDSERVE_SERVICE_NAME"`
}

// NewConfig reads the logger configuration from environment variables.
func NewConfig() Config {
	level := os.Getenv("ZAP_LOGGER_LEVEL")
	if level == "" {
		level = Info
	}

	service := os.Getenv("EMBEDSERVE_SERVICE_NAME")
	if service == "" {
		service = "embedserve"
	}

	return Config{
		Level:       level,
		ServiceName: service,
	}
}
