package server

import (
	"context"
	"errors"
	"net"
	"net/http"

	"go.uber.org/fx"
)

// FXModule wires the HTTP server into an Fx-based application.
//
// The listener is bound during OnStart so that an unusable address fails
// startup instead of surfacing later from a background goroutine. The
// server hook is registered last in the application wiring, which means
// the store ping and the backend probe have already succeeded by the
// time the listener opens — no request is accepted half-initialized.
var FXModule = fx.Module("server",
	fx.Provide(
		NewConfig,
		NewServer,
	),
	fx.Invoke(RegisterServerLifecycle),
)

// RegisterServerLifecycle starts the HTTP listener and shuts it down
// gracefully, letting in-flight requests drain.
func RegisterServerLifecycle(lc fx.Lifecycle, s *Server, logger Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			listener, err := net.Listen("tcp", s.httpServer.Addr)
			if err != nil {
				return err
			}

			logger.Info("http server listening", nil, map[string]interface{}{
				"addr": s.httpServer.Addr,
			})

			go func() {
				if err := s.httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Error("http server terminated", err, nil)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("shutting down http server", nil, nil)
			return s.httpServer.Shutdown(ctx)
		},
	})
}
