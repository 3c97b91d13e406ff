package server

import (
	"net"
	"net/http"
	"strings"

	"github.com/embedserve/embedserve/internal/auth"
	"github.com/embedserve/embedserve/internal/ratelimit"
)

// requestState carries the per-request results accumulated by the gates.
// It is created fresh for every request and discarded with it.
type requestState struct {
	identity *auth.Identity
}

// gate is one admission stage. A non-nil error terminates the pipeline;
// later gates and the handler body never run.
type gate func(r *http.Request, st *requestState) error

// runGates applies the gates in order, stopping at the first failure.
func runGates(r *http.Request, st *requestState, gates ...gate) error {
	for _, g := range gates {
		if err := g(r, st); err != nil {
			return err
		}
	}
	return nil
}

// authenticate verifies the bearer credential and records the caller's
// identity in the request state.
func (s *Server) authenticate(r *http.Request, st *requestState) error {
	identity, err := s.verifier.Verify(r.Context(), bearerToken(r))
	if err != nil {
		return err
	}
	st.identity = identity
	return nil
}

// rateLimit charges the request against the caller's window quota,
// keyed by identity when the authenticate gate already ran, otherwise
// by network origin.
func (s *Server) rateLimit(r *http.Request, st *requestState) error {
	subject := ""
	if st.identity != nil {
		subject = st.identity.Subject
	}
	return s.limiter.Allow(r.Context(), ratelimit.ClientKey(subject, remoteHost(r)))
}

// bearerToken extracts the credential from the Authorization header.
// Returns "" when no bearer credential is presented.
func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// remoteHost returns the caller's address without the ephemeral port so
// the rate-limit key stays stable across connections.
func remoteHost(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
