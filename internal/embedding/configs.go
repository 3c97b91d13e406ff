package embedding

import (
	"fmt"
	"os"
	"strconv"
)

// Supported precision modes for the backend. The mode is forwarded to
// the backend as-is; this service does not verify what the backend
// actually runs with.
const (
	QuantizationInt8 = "int8"
	QuantizationFP16 = "fp16"
	QuantizationFP32 = "fp32"
)

// Defaults for the backend configuration.
const (
	DefaultModel           = "google/embeddinggemma-300m"
	DefaultQuantization    = QuantizationInt8
	DefaultMaxSeqLength    = 2048
	DefaultMaxBackendBatch = 8
	DefaultHTTPTimeoutS    = 30
)

// EMBEDDING_ENDPOINT must point to the root of the inference service (no
// path appended). The provider appends paths automatically, so callers
// only need to supply the host base URL.

// Config defines the configuration for the embedding backend.
type Config struct {
	// Endpoint is the base URL of the inference backend.
	Endpoint string

	// Model is the identifier of the embedding model to run.
	Model string

	// Quantization is the precision mode requested from the backend:
	// int8, fp16 or fp32.
	Quantization string

	// MaxSeqLength is the token length the backend truncates inputs to.
	MaxSeqLength int

	// MaxBackendBatch caps how many texts go to the backend in one
	// request; larger validated batches are chunked by the client.
	MaxBackendBatch int

	// ServiceToken is an optional bearer token for the backend
	// (gated-model access).
	ServiceToken string

	// HTTPTimeoutS is the HTTP client timeout in seconds.
	HTTPTimeoutS int
}

// NewConfig reads the backend configuration from environment variables.
func NewConfig() *Config {
	cfg := &Config{
		Endpoint:        os.Getenv("EMBEDDING_ENDPOINT"),
		Model:           os.Getenv("EMBEDDING_MODEL"),
		Quantization:    os.Getenv("EMBEDDING_QUANTIZATION"),
		ServiceToken:    os.Getenv("EMBEDDING_SERVICE_TOKEN"),
		MaxSeqLength:    DefaultMaxSeqLength,
		MaxBackendBatch: DefaultMaxBackendBatch,
		HTTPTimeoutS:    DefaultHTTPTimeoutS,
	}

	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Quantization == "" {
		cfg.Quantization = DefaultQuantization
	}
	if v := os.Getenv("EMBEDDING_MAX_SEQ_LENGTH"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MaxSeqLength = n
		}
	}
	if v := os.Getenv("EMBEDDING_MAX_BACKEND_BATCH"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MaxBackendBatch = n
		}
	}
	if v := os.Getenv("EMBEDDING_HTTP_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.HTTPTimeoutS = n
		}
	}

	return cfg
}

// Validate ensures required fields are present and consistent.
func (c *Config) Validate() error {
	if c.Endpoint == "" {
		return fmt.Errorf("embedding: missing EMBEDDING_ENDPOINT")
	}
	if c.Model == "" {
		return fmt.Errorf("embedding: missing EMBEDDING_MODEL")
	}
	switch c.Quantization {
	case QuantizationInt8, QuantizationFP16, QuantizationFP32:
	default:
		return fmt.Errorf("embedding: unknown quantization mode %q", c.Quantization)
	}
	return nil
}
