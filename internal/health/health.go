// Package health reports the service's aggregate operational state.
//
// The report is derived fresh on every call and never fails outright:
// a failed store probe is a reportable state, not a pipeline fault.
package health

import (
	"context"
	"time"
)

// Probe timeout for the store liveness check.
const DefaultProbeTimeout = 500 * time.Millisecond

// Statuses reported by the health endpoint.
const (
	StatusHealthy   = "healthy"
	StatusUnhealthy = "unhealthy"
)

// Pinger is the store liveness probe. Implemented by the redis package's
// *Client.
type Pinger interface {
	Ping(ctx context.Context) error
}

// ModelState reports whether the embedding backend completed its startup
// probe. Implemented by the embedding package's *Client.
type ModelState interface {
	Loaded() bool
}

// State is the composite health snapshot.
type State struct {
	Status         string
	ModelLoaded    bool
	StoreConnected bool
}

// Reporter computes health snapshots from the backend state flag and a
// live store probe.
type Reporter struct {
	store        Pinger
	model        ModelState
	probeTimeout time.Duration
}

// NewReporter constructs a Reporter.
func NewReporter(store Pinger, model ModelState) *Reporter {
	return &Reporter{
		store:        store,
		model:        model,
		probeTimeout: DefaultProbeTimeout,
	}
}

// Check returns the current health state. The store probe runs with a
// short timeout; any failure, including timeout, yields a false flag and
// is otherwise swallowed. The backend flag is cheap: it reflects the
// startup probe, no inference runs here.
func (r *Reporter) Check(ctx context.Context) State {
	state := State{
		ModelLoaded: r.model.Loaded(),
	}

	probeCtx, cancel := context.WithTimeout(ctx, r.probeTimeout)
	defer cancel()
	if err := r.store.Ping(probeCtx); err == nil {
		state.StoreConnected = true
	}

	if state.ModelLoaded && state.StoreConnected {
		state.Status = StatusHealthy
	} else {
		state.Status = StatusUnhealthy
	}
	return state
}
