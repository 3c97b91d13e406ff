package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics encapsulates the Prometheus registry and the collectors that
// track the embedding pipeline.
//
// The service maintains its own isolated registry to prevent metric name
// collisions, and all metrics carry a constant `service` label.
type Metrics struct {
	// Registry is the Prometheus registry where all metrics are registered.
	Registry *prometheus.Registry

	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	errorsTotal     *prometheus.CounterVec
}

// NewMetrics initializes and returns a new instance of the Metrics struct.
// It sets up a dedicated Prometheus registry, registers the pipeline
// metrics and (optionally) the default system collectors, and wraps all
// metrics with a constant `service` label.
//
// The pipeline metrics:
//   - embed_requests_total{endpoint}: gated embedding requests received
//   - embed_request_duration_seconds{endpoint}: request latency
//   - embed_errors_total{error_type}: failures by error kind
func NewMetrics(cfg Config) *Metrics {
	registry := prometheus.NewRegistry()

	// All metrics emitted by this service automatically include the
	// label service="<cfg.ServiceName>".
	wrappedRegistry := prometheus.WrapRegistererWith(
		prometheus.Labels{"service": cfg.ServiceName},
		registry,
	)

	m := &Metrics{
		Registry: registry,
	}

	m.requestsTotal = createCounterVec("embed_requests_total", "Total embedding requests", []string{"endpoint"})
	m.requestDuration = createHistogramVec("embed_request_duration_seconds", "Embedding request duration in seconds", []string{"endpoint"}, prometheus.DefBuckets)
	m.errorsTotal = createCounterVec("embed_errors_total", "Total errors by kind", []string{"error_type"})

	wrappedRegistry.MustRegister(
		m.requestsTotal,
		m.requestDuration,
		m.errorsTotal,
	)

	if cfg.EnableDefaultCollectors {
		wrappedRegistry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			collectors.NewBuildInfoCollector(),
		)
	}

	return m
}

// Handler returns the HTTP handler that serves the registry in the
// Prometheus exposition format. It is mounted on the service's own mux;
// access control is a deployment concern.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}
