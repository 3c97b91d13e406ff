package redis

import (
	"context"

	"go.uber.org/fx"
)

// FXModule wires the store client into an Fx-based application.
//
// It provides:
//   - Config          (NewConfig)
//   - *Client         (NewClient)
//   - Store interface (bound to *Client)
//
// The lifecycle hook pings the store on startup so that an unreachable
// store aborts the application instead of letting it start half-initialized,
// and closes the connection pool on shutdown.
var FXModule = fx.Module("redis",
	fx.Provide(
		NewConfig,
		NewClient,
		func(c *Client) Store { return c },
	),
	fx.Invoke(RegisterStoreLifecycle),
)

// RegisterStoreLifecycle manages startup verification and shutdown of the
// store connection.
func RegisterStoreLifecycle(lc fx.Lifecycle, client *Client, logger Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := client.Ping(ctx); err != nil {
				logger.Error("store unreachable at startup", err, nil)
				return err
			}
			logger.Info("store connected", nil, nil)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("closing store connection", nil, nil)
			return client.Close()
		},
	})
}
