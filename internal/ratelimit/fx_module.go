package ratelimit

import "go.uber.org/fx"

// FXModule wires the rate limiter into an Fx-based application.
// A Store and a Logger implementation must be available in the container.
var FXModule = fx.Module("ratelimit",
	fx.Provide(
		NewConfig,
		NewLimiter,
	),
)
