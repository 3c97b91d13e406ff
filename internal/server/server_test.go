package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/embedserve/embedserve/internal/auth"
	"github.com/embedserve/embedserve/internal/embedding"
	"github.com/embedserve/embedserve/internal/health"
	"github.com/embedserve/embedserve/internal/logger"
	"github.com/embedserve/embedserve/internal/metrics"
	"github.com/embedserve/embedserve/internal/ratelimit"
	"github.com/embedserve/embedserve/internal/tracer"
)

const validToken = "valid-token"

type fakeVerifier struct{}

func (fakeVerifier) Verify(ctx context.Context, credential string) (*auth.Identity, error) {
	switch credential {
	case "":
		return nil, auth.ErrNoCredentials
	case validToken:
		return &auth.Identity{Subject: "user-123", Role: "authenticated"}, nil
	case "expired-token":
		return nil, auth.ErrTokenExpired
	case "no-subject-token":
		return nil, auth.ErrMalformedClaims
	default:
		return nil, auth.ErrInvalidToken
	}
}

type fakeLimiter struct {
	calls atomic.Int64
	err   error
}

func (f *fakeLimiter) Allow(ctx context.Context, key string) error {
	f.calls.Add(1)
	return f.err
}

// fakeEmbedder emits a fixed-dimension vector per text; normalization is
// honored so norm assertions exercise the real contract.
type fakeEmbedder struct {
	err error
}

func (f *fakeEmbedder) Embed(ctx context.Context, texts []string, normalize bool) ([][]float64, error) {
	if f.err != nil {
		return nil, f.err
	}

	out := make([][]float64, len(texts))
	for i := range texts {
		vec := []float64{3, 4, 0, 0}
		if normalize {
			vec = []float64{0.6, 0.8, 0, 0}
		}
		out[i] = vec
	}
	return out, nil
}

func (fakeEmbedder) ModelName() string { return "test-model" }

type fakeChecker struct {
	state health.State
}

func (f *fakeChecker) Check(ctx context.Context) health.State { return f.state }

type serverFixture struct {
	server  *Server
	limiter *fakeLimiter
	embed   *fakeEmbedder
	checker *fakeChecker
}

func newFixture() *serverFixture {
	f := &serverFixture{
		limiter: &fakeLimiter{},
		embed:   &fakeEmbedder{},
		checker: &fakeChecker{state: health.State{
			Status:         health.StatusHealthy,
			ModelLoaded:    true,
			StoreConnected: true,
		}},
	}

	cfg := Config{
		Addr:        ":0",
		ServiceName: "embedserve",
		Version:     "0.1.0",
		CORSOrigins: []string{"*"},
	}
	m := metrics.NewMetrics(metrics.Config{ServiceName: "test"})

	f.server = NewServer(cfg, logger.NewNop(), m, (*tracer.Tracer)(nil), fakeVerifier{}, f.limiter, f.embed, f.checker)
	return f
}

func (f *serverFixture) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.RemoteAddr = "10.1.2.3:54321"
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	f.server.Routes().ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&out))
	return out
}

func TestRootListsEndpoints(t *testing.T) {
	f := newFixture()

	rec := f.do(t, http.MethodGet, "/", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decode[RootResponse](t, rec)
	assert.Equal(t, "embedserve", resp.Service)
	assert.Equal(t, "0.1.0", resp.Version)
	for _, key := range []string{"embed", "batch_embed", "health", "metrics"} {
		assert.Contains(t, resp.Endpoints, key)
	}
}

func TestHealthReportsDegradedStateWith200(t *testing.T) {
	f := newFixture()
	f.checker.state = health.State{
		Status:         health.StatusUnhealthy,
		ModelLoaded:    true,
		StoreConnected: false,
	}

	rec := f.do(t, http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, rec.Code, "health must report, not fail")

	resp := decode[HealthResponse](t, rec)
	assert.Equal(t, "unhealthy", resp.Status)
	assert.True(t, resp.ModelLoaded)
	assert.False(t, resp.StoreConnected)
}

func TestEmbedWithoutCredentials(t *testing.T) {
	f := newFixture()

	rec := f.do(t, http.MethodPost, "/embed", "", EmbedRequest{Text: "hello"})
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	resp := decode[ErrorResponse](t, rec)
	assert.Contains(t, resp.Error, "authentication required")
	assert.Zero(t, f.limiter.calls.Load(), "rate limiter must not run after a failed auth gate")
}

func TestEmbedAuthFailureMessages(t *testing.T) {
	f := newFixture()

	cases := map[string]struct {
		token   string
		message string
	}{
		"expired":    {"expired-token", "token has expired"},
		"invalid":    {"garbage", "authentication failed"},
		"no subject": {"no-subject-token", "authentication failed"},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			rec := f.do(t, http.MethodPost, "/embed", tc.token, EmbedRequest{Text: "hello"})
			require.Equal(t, http.StatusUnauthorized, rec.Code)
			resp := decode[ErrorResponse](t, rec)
			assert.Contains(t, resp.Error, tc.message)
		})
	}
}

func TestEmbedSuccess(t *testing.T) {
	f := newFixture()

	rec := f.do(t, http.MethodPost, "/embed", validToken, EmbedRequest{Text: "hello world"})
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decode[EmbedResponse](t, rec)
	assert.Equal(t, "test-model", resp.Model)
	assert.Equal(t, 4, resp.Dimension)
	assert.Len(t, resp.Embeddings, 4)

	// Normalize defaults to true: the vector comes back unit length.
	var sum float64
	for _, v := range resp.Embeddings {
		sum += v * v
	}
	assert.InDelta(t, 1.0, math.Sqrt(sum), 1e-9)
	assert.Equal(t, int64(1), f.limiter.calls.Load())
}

func TestEmbedNormalizeFalse(t *testing.T) {
	f := newFixture()

	normalize := false
	rec := f.do(t, http.MethodPost, "/embed", validToken, EmbedRequest{Text: "hello", Normalize: &normalize})
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decode[EmbedResponse](t, rec)
	assert.Equal(t, 3.0, resp.Embeddings[0], "vector must come back raw when normalize is false")
}

func TestEmbedValidationFailures(t *testing.T) {
	f := newFixture()

	cases := map[string]struct {
		text    string
		message string
	}{
		"blank":    {"   ", "empty"},
		"too long": {strings.Repeat("a", 8193), "too long"},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			rec := f.do(t, http.MethodPost, "/embed", validToken, EmbedRequest{Text: tc.text})
			require.Equal(t, http.StatusBadRequest, rec.Code)
			resp := decode[ErrorResponse](t, rec)
			assert.Contains(t, resp.Error, tc.message)
		})
	}
}

func TestEmbedInvalidBody(t *testing.T) {
	f := newFixture()

	req := httptest.NewRequest(http.MethodPost, "/embed", strings.NewReader("{not json"))
	req.Header.Set("Authorization", "Bearer "+validToken)
	req.RemoteAddr = "10.1.2.3:54321"
	rec := httptest.NewRecorder()
	f.server.Routes().ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decode[ErrorResponse](t, rec)
	assert.Contains(t, resp.Error, "invalid request body")
}

func TestEmbedRateLimited(t *testing.T) {
	f := newFixture()
	f.limiter.err = ratelimit.ErrRateLimitExceeded

	rec := f.do(t, http.MethodPost, "/embed", validToken, EmbedRequest{Text: "hello"})
	require.Equal(t, http.StatusTooManyRequests, rec.Code)

	resp := decode[ErrorResponse](t, rec)
	assert.Contains(t, resp.Error, "rate limit exceeded")
}

func TestEmbedRateLimiterUnavailableFailsClosed(t *testing.T) {
	f := newFixture()
	f.limiter.err = fmt.Errorf("%w: dial tcp 10.0.0.5:6379: connection refused", ratelimit.ErrStoreUnavailable)

	rec := f.do(t, http.MethodPost, "/embed", validToken, EmbedRequest{Text: "hello"})
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	resp := decode[ErrorResponse](t, rec)
	assert.NotContains(t, resp.Error, "6379", "store details must not leak to callers")
	assert.NotContains(t, resp.Error, "dial tcp")
}

func TestEmbedInferenceFailureIsRedacted(t *testing.T) {
	f := newFixture()
	f.embed.err = embedding.ErrInferenceFailed

	rec := f.do(t, http.MethodPost, "/embed", validToken, EmbedRequest{Text: "hello"})
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	resp := decode[ErrorResponse](t, rec)
	assert.Equal(t, "embedding failed", resp.Error)
}

func TestBatchEmbedSuccess(t *testing.T) {
	f := newFixture()

	rec := f.do(t, http.MethodPost, "/batch-embed", validToken, BatchEmbedRequest{
		Texts: []string{"one", "two", "three"},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decode[BatchEmbedResponse](t, rec)
	assert.Equal(t, 3, resp.Count)
	require.Len(t, resp.Embeddings, 3)
	for _, vec := range resp.Embeddings {
		assert.Len(t, vec, resp.Dimension)
	}
}

func TestBatchEmbedSizeViolations(t *testing.T) {
	f := newFixture()

	over := make([]string, 33)
	for i := range over {
		over[i] = "text"
	}

	cases := map[string]struct {
		texts   []string
		message string
	}{
		"empty":     {nil, "empty"},
		"too large": {over, "too large"},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			rec := f.do(t, http.MethodPost, "/batch-embed", validToken, BatchEmbedRequest{Texts: tc.texts})
			require.Equal(t, http.StatusBadRequest, rec.Code)
			resp := decode[ErrorResponse](t, rec)
			assert.Contains(t, resp.Error, tc.message)
		})
	}
}

func TestMetricsEndpointServes(t *testing.T) {
	f := newFixture()

	// Populate a counter so the exposition has service-owned content.
	rec := f.do(t, http.MethodPost, "/embed", validToken, EmbedRequest{Text: "hello"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(t, http.MethodGet, "/metrics", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "embed_requests_total")
}

func TestCORSHeadersAndPreflight(t *testing.T) {
	f := newFixture()

	req := httptest.NewRequest(http.MethodOptions, "/embed", nil)
	req.Header.Set("Origin", "https://app.example.com")
	rec := httptest.NewRecorder()
	f.server.Routes().ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Headers"), "Authorization")
}

func TestBearerTokenExtraction(t *testing.T) {
	cases := map[string]struct {
		header string
		want   string
	}{
		"standard":    {"Bearer abc.def.ghi", "abc.def.ghi"},
		"lower case":  {"bearer abc", "abc"},
		"no scheme":   {"abc", ""},
		"wrong kind":  {"Basic dXNlcjpwYXNz", ""},
		"empty":       {"", ""},
		"only scheme": {"Bearer ", ""},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			assert.Equal(t, tc.want, bearerToken(req))
		})
	}
}
