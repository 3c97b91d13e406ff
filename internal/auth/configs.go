package auth

import (
	"fmt"
	"os"
)

// Config defines the configuration for the token verifier.
type Config struct {
	// Secret is the pre-shared HMAC-SHA256 signing secret. The identity
	// issuer signs tokens with the same secret; this service only
	// verifies them.
	Secret string
}

// NewConfig reads the verifier configuration from environment variables.
func NewConfig() Config {
	return Config{
		Secret: os.Getenv("EMBEDSERVE_JWT_SECRET"),
	}
}

// Validate ensures required fields are present.
func (c Config) Validate() error {
	if c.Secret == "" {
		return fmt.Errorf("auth: missing EMBEDSERVE_JWT_SECRET")
	}
	return nil
}
