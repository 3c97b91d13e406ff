package logger

import (
	"context"

	"go.uber.org/fx"
)

// FXModule wires the logger into an Fx-based application.
//
// It provides the NewLoggerClient factory and registers a shutdown hook
// that flushes any buffered log entries when the application terminates.
var FXModule = fx.Module("logger",
	fx.Provide(
		NewConfig,
		NewLoggerClient,
	),
	fx.Invoke(RegisterLoggerLifecycle),
)

// RegisterLoggerLifecycle handles cleanup (sync) of the Zap logger.
func RegisterLoggerLifecycle(lc fx.Lifecycle, client *Logger) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			// Sync can legitimately fail on stderr; logs are already flushed.
			_ = client.Zap.Sync()
			return nil
		},
	})
}
