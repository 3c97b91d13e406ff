package metrics

import "go.uber.org/fx"

// FXModule wires the metrics registry into an Fx-based application.
// The exposition handler is mounted on the main HTTP server by the
// server package rather than on a separate listener.
var FXModule = fx.Module("metrics",
	fx.Provide(
		NewConfig,
		NewMetrics,
	),
)
