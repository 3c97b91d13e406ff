// Command embedserve runs the embedding API: bearer-token authenticated
// /embed and /batch-embed endpoints with per-client rate limiting, plus
// unauthenticated health and metrics endpoints.
//
// All components are wired through Fx. Startup is fail-fast: the store
// must answer a ping and the inference backend must serve a probe
// embedding before the HTTP listener opens. Shutdown drains in-flight
// requests, then closes the store connection.
package main

import (
	"go.uber.org/fx"

	"github.com/embedserve/embedserve/internal/auth"
	"github.com/embedserve/embedserve/internal/embedding"
	"github.com/embedserve/embedserve/internal/health"
	"github.com/embedserve/embedserve/internal/logger"
	"github.com/embedserve/embedserve/internal/metrics"
	"github.com/embedserve/embedserve/internal/ratelimit"
	"github.com/embedserve/embedserve/internal/redis"
	"github.com/embedserve/embedserve/internal/server"
	"github.com/embedserve/embedserve/internal/tracer"
)

func main() {
	fx.New(
		logger.FXModule,
		tracer.FXModule,
		metrics.FXModule,
		redis.FXModule,
		auth.FXModule,
		ratelimit.FXModule,
		embedding.FXModule,
		health.FXModule,
		server.FXModule,

		// Interface bindings between packages. Each package accepts its
		// own narrow interface; the concrete types all come from above.
		fx.Provide(
			func(l *logger.Logger) redis.Logger { return l },
			func(l *logger.Logger) auth.Logger { return l },
			func(l *logger.Logger) ratelimit.Logger { return l },
			func(l *logger.Logger) embedding.Logger { return l },
			func(l *logger.Logger) tracer.Logger { return l },
			func(l *logger.Logger) server.Logger { return l },

			func(c *redis.Client) ratelimit.Store { return c },
			func(c *redis.Client) health.Pinger { return c },
			func(c *embedding.Client) health.ModelState { return c },

			func(v *auth.Verifier) server.Verifier { return v },
			func(l *ratelimit.Limiter) server.Limiter { return l },
			func(c *embedding.Client) server.Embedder { return c },
			func(r *health.Reporter) server.HealthChecker { return r },
		),
	).Run()
}
