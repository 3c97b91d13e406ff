package embedding

import (
	"context"

	"go.uber.org/fx"
)

// FXModule wires the embedding system into Fx.
//
// It provides:
//   - *Config  (NewConfig)
//   - *Client  (NewClient)
//
// The lifecycle hook probes the backend on startup (failing the whole
// application if the model cannot be served) and releases provider
// resources on shutdown.
var FXModule = fx.Module("embedding",
	fx.Provide(
		NewConfig,
		NewClient,
	),
	fx.Invoke(RegisterEmbeddingLifecycle),
)

// RegisterEmbeddingLifecycle manages the backend probe and cleanup.
func RegisterEmbeddingLifecycle(lc fx.Lifecycle, client *Client) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return client.Load(ctx)
		},
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})
}
