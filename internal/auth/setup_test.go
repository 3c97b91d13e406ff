package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/embedserve/embedserve/internal/logger"
)

const testSecret = "test-signing-secret"

func newTestVerifier(t *testing.T) *Verifier {
	t.Helper()
	v, err := NewVerifier(Config{Secret: testSecret}, logger.NewNop())
	if err != nil {
		t.Fatalf("NewVerifier: %v", err)
	}
	return v
}

func mintToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}
	return token
}

func TestVerifyValidToken(t *testing.T) {
	v := newTestVerifier(t)

	token := mintToken(t, testSecret, jwt.MapClaims{
		"sub":  "user-123",
		"role": "authenticated",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})

	identity, err := v.Verify(context.Background(), token)
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if identity.Subject != "user-123" {
		t.Fatalf("expected subject user-123, got %q", identity.Subject)
	}
	if identity.Role != "authenticated" {
		t.Fatalf("expected role authenticated, got %q", identity.Role)
	}
}

func TestVerifyNoCredential(t *testing.T) {
	v := newTestVerifier(t)

	_, err := v.Verify(context.Background(), "")
	if !errors.Is(err, ErrNoCredentials) {
		t.Fatalf("expected ErrNoCredentials, got %v", err)
	}
}

func TestVerifyExpiredTokenIsNotInvalid(t *testing.T) {
	v := newTestVerifier(t)

	token := mintToken(t, testSecret, jwt.MapClaims{
		"sub": "user-123",
		"exp": time.Now().Add(-time.Hour).Unix(),
	})

	_, err := v.Verify(context.Background(), token)
	if !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
	if errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expired token must not be reported as invalid")
	}
}

func TestVerifyWrongSecret(t *testing.T) {
	v := newTestVerifier(t)

	token := mintToken(t, "some-other-secret", jwt.MapClaims{
		"sub": "user-123",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	_, err := v.Verify(context.Background(), token)
	if !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestVerifyMissingSubject(t *testing.T) {
	v := newTestVerifier(t)

	for name, claims := range map[string]jwt.MapClaims{
		"absent": {"exp": time.Now().Add(time.Hour).Unix()},
		"empty":  {"sub": "", "exp": time.Now().Add(time.Hour).Unix()},
	} {
		t.Run(name, func(t *testing.T) {
			token := mintToken(t, testSecret, claims)
			_, err := v.Verify(context.Background(), token)
			if !errors.Is(err, ErrMalformedClaims) {
				t.Fatalf("expected ErrMalformedClaims, got %v", err)
			}
		})
	}
}

func TestVerifyGarbageToken(t *testing.T) {
	v := newTestVerifier(t)

	_, err := v.Verify(context.Background(), "not-a-jwt-at-all")
	if !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestVerifyIgnoresAudience(t *testing.T) {
	v := newTestVerifier(t)

	// Tokens minted for a foreign audience are accepted on purpose.
	token := mintToken(t, testSecret, jwt.MapClaims{
		"sub": "user-123",
		"aud": "some-other-service",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	if _, err := v.Verify(context.Background(), token); err != nil {
		t.Fatalf("audience must not be verified, got %v", err)
	}
}

func TestVerifyWrongAlgorithm(t *testing.T) {
	v := newTestVerifier(t)

	// alg=none style tokens must be rejected as invalid.
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub": "user-123",
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}

	_, verifyErr := v.Verify(context.Background(), token)
	if !errors.Is(verifyErr, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", verifyErr)
	}
}

func TestNewVerifierRequiresSecret(t *testing.T) {
	if _, err := NewVerifier(Config{}, logger.NewNop()); err == nil {
		t.Fatal("expected error for missing secret")
	}
}
