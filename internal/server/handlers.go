package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/embedserve/embedserve/internal/validate"
)

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, RootResponse{
		Service: s.cfg.ServiceName,
		Version: s.cfg.Version,
		Endpoints: map[string]string{
			"embed":       "/embed",
			"batch_embed": "/batch-embed",
			"health":      "/health",
			"metrics":     "/metrics",
		},
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	state := s.health.Check(r.Context())

	// Degraded state is a report, not an error: always 200.
	s.writeJSON(w, http.StatusOK, HealthResponse{
		Status:         state.Status,
		ModelLoaded:    state.ModelLoaded,
		StoreConnected: state.StoreConnected,
	})
}

func (s *Server) handleEmbed(w http.ResponseWriter, r *http.Request) {
	const endpoint = "/embed"

	ctx, span := s.tracer.StartSpan(r.Context(), "embed")
	defer span.End()
	r = r.WithContext(ctx)

	s.metrics.IncrementRequests(endpoint)
	defer s.metrics.RecordRequestDuration(time.Now(), endpoint)

	st := &requestState{}
	if err := runGates(r, st, s.authenticate, s.rateLimit); err != nil {
		s.writeError(w, endpoint, err)
		return
	}

	var req EmbedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, endpoint, fmt.Errorf("%w: %v", ErrInvalidBody, err))
		return
	}

	clean, err := validate.Single(req.Text)
	if err != nil {
		s.writeError(w, endpoint, err)
		return
	}

	vectors, err := s.embedder.Embed(r.Context(), []string{clean}, normalizeFlag(req.Normalize))
	if err != nil {
		s.writeError(w, endpoint, err)
		return
	}

	s.logger.Info("embed_success", nil, map[string]interface{}{
		"user_id":     st.identity.Subject,
		"text_length": len(clean),
		"dimension":   len(vectors[0]),
	})

	s.writeJSON(w, http.StatusOK, EmbedResponse{
		Embeddings: vectors[0],
		Dimension:  len(vectors[0]),
		Model:      s.embedder.ModelName(),
	})
}

func (s *Server) handleBatchEmbed(w http.ResponseWriter, r *http.Request) {
	const endpoint = "/batch-embed"

	ctx, span := s.tracer.StartSpan(r.Context(), "batch-embed")
	defer span.End()
	r = r.WithContext(ctx)

	s.metrics.IncrementRequests(endpoint)
	defer s.metrics.RecordRequestDuration(time.Now(), endpoint)

	st := &requestState{}
	if err := runGates(r, st, s.authenticate, s.rateLimit); err != nil {
		s.writeError(w, endpoint, err)
		return
	}

	var req BatchEmbedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, endpoint, fmt.Errorf("%w: %v", ErrInvalidBody, err))
		return
	}

	cleaned, err := validate.Batch(req.Texts)
	if err != nil {
		s.writeError(w, endpoint, err)
		return
	}

	vectors, err := s.embedder.Embed(r.Context(), cleaned, normalizeFlag(req.Normalize))
	if err != nil {
		s.writeError(w, endpoint, err)
		return
	}

	s.logger.Info("batch_embed_success", nil, map[string]interface{}{
		"user_id":    st.identity.Subject,
		"batch_size": len(cleaned),
		"dimension":  len(vectors[0]),
	})

	s.writeJSON(w, http.StatusOK, BatchEmbedResponse{
		Embeddings: vectors,
		Dimension:  len(vectors[0]),
		Model:      s.embedder.ModelName(),
		Count:      len(vectors),
	})
}

func (s *Server) writeError(w http.ResponseWriter, endpoint string, err error) {
	status, message := mapError(err)
	kind := errorKind(err)

	s.metrics.IncrementErrors(kind)

	fields := map[string]interface{}{
		"endpoint": endpoint,
		"kind":     kind,
		"status":   status,
	}
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", err, fields)
	} else {
		s.logger.Warn("request rejected", err, fields)
	}

	s.writeJSON(w, status, ErrorResponse{Error: message})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("failed to encode response", err, nil)
	}
}
