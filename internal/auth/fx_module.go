package auth

import "go.uber.org/fx"

// FXModule wires the token verifier into an Fx-based application.
// A missing signing secret fails construction and therefore startup.
var FXModule = fx.Module("auth",
	fx.Provide(
		NewConfig,
		NewVerifier,
	),
)
