package tracer

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/embedserve/embedserve"

// StartSpan begins a new span with the given name. It is nil-safe so
// that handlers built without a tracer (tests) stay instrumented-free
// without branching at every call site.
func (t *Tracer) StartSpan(ctx context.Context, name string, attrs ...trace.SpanStartOption) (context.Context, trace.Span) {
	if t == nil {
		return otel.Tracer(instrumentationName).Start(ctx, name, attrs...)
	}
	return t.provider.Tracer(instrumentationName).Start(ctx, name, attrs...)
}
