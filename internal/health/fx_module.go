package health

import "go.uber.org/fx"

// FXModule wires the health reporter into an Fx-based application.
// Pinger and ModelState implementations must be available in the container.
var FXModule = fx.Module("health",
	fx.Provide(NewReporter),
)
