package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Logger defines the interface for logging operations in the auth package.
type Logger interface {
	Info(msg string, err error, fields ...map[string]interface{})
	Warn(msg string, err error, fields ...map[string]interface{})
	Error(msg string, err error, fields ...map[string]interface{})
}

// Identity describes the authenticated caller extracted from a verified
// credential. It lives for the duration of a single request.
type Identity struct {
	// Subject is the caller identity from the "sub" claim. Never empty.
	Subject string

	// Role is the optional "role" claim. Empty when absent.
	Role string
}

// Verifier validates bearer credentials against a pre-shared secret.
// It is safe for concurrent use.
type Verifier struct {
	secret []byte
	logger Logger
}

// NewVerifier constructs a Verifier from Config.
func NewVerifier(cfg Config, logger Logger) (*Verifier, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Verifier{
		secret: []byte(cfg.Secret),
		logger: logger,
	}, nil
}

// Verify decodes and validates the given raw credential and returns the
// caller's identity.
//
// The signature is checked with HMAC-SHA256 only; tokens signed with any
// other algorithm are rejected as invalid. Expiry is enforced against the
// current time. The audience claim is intentionally not verified. Every
// rejection reason is logged server-side; callers only see one of the
// four sentinel kinds, never a raw decode error.
func (v *Verifier) Verify(ctx context.Context, credential string) (*Identity, error) {
	if credential == "" {
		v.logger.Warn("auth_missing_credentials", nil, nil)
		return nil, ErrNoCredentials
	}

	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(credential, claims, v.keyFunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			v.logger.Warn("auth_token_expired", nil, nil)
			return nil, ErrTokenExpired
		default:
			// Malformed structure, bad signature, wrong algorithm,
			// missing expiry: all normalized to a single invalid-token
			// kind. The concrete reason stays in the server log.
			v.logger.Warn("auth_invalid_token", err, nil)
			return nil, ErrInvalidToken
		}
	}

	subject, err := claims.GetSubject()
	if err != nil || subject == "" {
		v.logger.Warn("auth_missing_subject", err, nil)
		return nil, ErrMalformedClaims
	}

	identity := &Identity{Subject: subject}
	if role, ok := claims["role"].(string); ok {
		identity.Role = role
	}

	v.logger.Info("auth_verified", nil, map[string]interface{}{
		"user_id": identity.Subject,
		"role":    identity.Role,
	})

	return identity, nil
}

func (v *Verifier) keyFunc(token *jwt.Token) (interface{}, error) {
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("auth: unexpected signing method %q", token.Method.Alg())
	}
	return v.secret, nil
}
