package server

import (
	"context"
	"net/http"
	"time"

	"github.com/embedserve/embedserve/internal/auth"
	"github.com/embedserve/embedserve/internal/health"
	"github.com/embedserve/embedserve/internal/metrics"
	"github.com/embedserve/embedserve/internal/tracer"
)

// Logger defines the interface for logging operations in the server package.
type Logger interface {
	Info(msg string, err error, fields ...map[string]interface{})
	Warn(msg string, err error, fields ...map[string]interface{})
	Error(msg string, err error, fields ...map[string]interface{})
}

// Verifier validates bearer credentials. Implemented by auth.Verifier.
type Verifier interface {
	Verify(ctx context.Context, credential string) (*auth.Identity, error)
}

// Limiter charges requests against a per-client quota. Implemented by
// ratelimit.Limiter.
type Limiter interface {
	Allow(ctx context.Context, key string) error
}

// Embedder computes vectors for validated texts. Implemented by
// embedding.Client.
type Embedder interface {
	Embed(ctx context.Context, texts []string, normalize bool) ([][]float64, error)
	ModelName() string
}

// HealthChecker reports the aggregate service state. Implemented by
// health.Reporter.
type HealthChecker interface {
	Check(ctx context.Context) health.State
}

// Server is the HTTP surface of the service. It composes the admission
// gates and owns the error-to-status mapping; the collaborators behind
// its interfaces never see wire-level concerns.
type Server struct {
	cfg      Config
	logger   Logger
	metrics  *metrics.Metrics
	tracer   *tracer.Tracer
	verifier Verifier
	limiter  Limiter
	embedder Embedder
	health   HealthChecker

	httpServer *http.Server
}

// NewServer constructs the Server and its route table.
func NewServer(
	cfg Config,
	logger Logger,
	m *metrics.Metrics,
	tr *tracer.Tracer,
	verifier Verifier,
	limiter Limiter,
	embedder Embedder,
	checker HealthChecker,
) *Server {
	s := &Server{
		cfg:      cfg,
		logger:   logger,
		metrics:  m,
		tracer:   tr,
		verifier: verifier,
		limiter:  limiter,
		embedder: embedder,
		health:   checker,
	}

	s.httpServer = &http.Server{
		Addr:              cfg.Addr,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	return s
}

// Routes builds the service mux. Exposed for handler tests.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleRoot)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("POST /embed", s.handleEmbed)
	mux.HandleFunc("POST /batch-embed", s.handleBatchEmbed)
	if s.metrics != nil {
		mux.Handle("GET /metrics", s.metrics.Handler())
	}
	return s.withCORS(mux)
}

// withCORS applies the configured allow-origins policy and answers
// preflight requests.
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if origin := s.allowOrigin(r.Header.Get("Origin")); origin != "" {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type")
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) allowOrigin(origin string) string {
	for _, allowed := range s.cfg.CORSOrigins {
		if allowed == "*" {
			return "*"
		}
		if allowed == origin {
			return origin
		}
	}
	return ""
}
