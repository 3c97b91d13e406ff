package server

import (
	"errors"
	"net/http"

	"github.com/embedserve/embedserve/internal/auth"
	"github.com/embedserve/embedserve/internal/embedding"
	"github.com/embedserve/embedserve/internal/ratelimit"
	"github.com/embedserve/embedserve/internal/validate"
)

// ErrInvalidBody is returned when the request payload cannot be decoded.
var ErrInvalidBody = errors.New("invalid request body")

// mapError translates component error kinds into the externally visible
// status code and message. Components never see wire-level codes; this
// table is the single place where the taxonomy meets HTTP.
//
// Authentication failures deliberately collapse into near-identical
// client messages (the distinct kinds live in log tags and metrics);
// validation failures echo the violated constraint; infrastructure
// failures stay generic so nothing internal leaks.
func mapError(err error) (int, string) {
	switch {
	case errors.Is(err, auth.ErrNoCredentials):
		return http.StatusUnauthorized, "authentication required: provide a valid bearer token in the Authorization header"
	case errors.Is(err, auth.ErrTokenExpired):
		return http.StatusUnauthorized, "authentication failed: token has expired"
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrMalformedClaims):
		return http.StatusUnauthorized, "authentication failed"

	case errors.Is(err, validate.ErrEmptyText),
		errors.Is(err, validate.ErrTextTooLong),
		errors.Is(err, validate.ErrEmptyBatch),
		errors.Is(err, validate.ErrBatchTooLarge):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, ErrInvalidBody):
		return http.StatusBadRequest, ErrInvalidBody.Error()

	case errors.Is(err, ratelimit.ErrRateLimitExceeded):
		return http.StatusTooManyRequests, "rate limit exceeded"

	case errors.Is(err, ratelimit.ErrStoreUnavailable):
		return http.StatusInternalServerError, "service temporarily unable to process request"
	case errors.Is(err, embedding.ErrInferenceFailed),
		errors.Is(err, embedding.ErrInconsistentDimension):
		return http.StatusInternalServerError, "embedding failed"
	}

	return http.StatusInternalServerError, "internal server error"
}

// errorKind names the failure for log tags and the error metric label.
func errorKind(err error) string {
	switch {
	case errors.Is(err, auth.ErrNoCredentials):
		return "unauthenticated"
	case errors.Is(err, auth.ErrTokenExpired):
		return "token_expired"
	case errors.Is(err, auth.ErrMalformedClaims):
		return "malformed_claims"
	case errors.Is(err, auth.ErrInvalidToken):
		return "invalid_token"
	case errors.Is(err, validate.ErrEmptyText):
		return "empty_text"
	case errors.Is(err, validate.ErrTextTooLong):
		return "text_too_long"
	case errors.Is(err, validate.ErrEmptyBatch):
		return "empty_batch"
	case errors.Is(err, validate.ErrBatchTooLarge):
		return "batch_too_large"
	case errors.Is(err, ErrInvalidBody):
		return "invalid_body"
	case errors.Is(err, ratelimit.ErrRateLimitExceeded):
		return "rate_limit_exceeded"
	case errors.Is(err, ratelimit.ErrStoreUnavailable):
		return "rate_limiter_unavailable"
	case errors.Is(err, embedding.ErrInconsistentDimension):
		return "inconsistent_dimension"
	case errors.Is(err, embedding.ErrInferenceFailed):
		return "inference_failed"
	}
	return "internal"
}
