package middleware

import (
	"github.com/go-chi/cors"

	"ai-task-planner/config"
	"ai-task-planner/pkg/log"
	"ai-task-planner/pkg/metrics"
	"ai-task-planner/pkg/scope"
)

// Middleware builds the gin middlewares shared by every domain.
type Middleware struct {
	l          log.Logger
	jwtManager scope.Manager
	limiter    *rateLimiter
	cors       *cors.Cors
	metrics    *metrics.Collector
}

// Config is the dependency bag passed to New.
type Config struct {
	CORS      config.CORSConfig
	RateLimit config.RateLimitConfig
	// Metrics may be nil.
	Metrics *metrics.Collector
}

func New(l log.Logger, jwtManager scope.Manager, cfg Config) Middleware {
	var limiter *rateLimiter
	if cfg.RateLimit.Enabled {
		limiter = newRateLimiter(cfg.RateLimit.RequestsPerMin, cfg.RateLimit.Burst)
	}

	return Middleware{
		l:          l,
		jwtManager: jwtManager,
		limiter:    limiter,
		cors:       newCORS(cfg.CORS),
		metrics:    cfg.Metrics,
	}
}
