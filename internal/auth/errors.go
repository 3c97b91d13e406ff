package auth

import "errors"

// Verification failure kinds. All of them map to an unauthenticated
// caller; none of them indicate a server fault.
var (
	// ErrNoCredentials is returned when no token was presented.
	ErrNoCredentials = errors.New("auth: authentication required")

	// ErrInvalidToken is returned for signature mismatches and any
	// malformed token structure.
	ErrInvalidToken = errors.New("auth: invalid token")

	// ErrTokenExpired is returned for well-formed, correctly signed
	// tokens whose expiry is in the past. Kept distinct from
	// ErrInvalidToken so callers can tell "log in again" from
	// "malformed token".
	ErrTokenExpired = errors.New("auth: token expired")

	// ErrMalformedClaims is returned for correctly signed tokens that
	// are missing a non-empty subject claim.
	ErrMalformedClaims = errors.New("auth: malformed claims")
)
