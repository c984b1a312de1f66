package httpserver

import (
	"database/sql"
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"ai-task-planner/config"
	"ai-task-planner/internal/ai"
	"ai-task-planner/pkg/log"
	"ai-task-planner/pkg/metrics"
	"ai-task-planner/pkg/scope"
)

const defaultShutdownTimeout = 10 * time.Second

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	shutdownTimeout time.Duration

	// Infrastructure
	postgresDB *sql.DB
	jwtManager scope.Manager
	metrics    *metrics.Collector
	cors       config.CORSConfig
	rateLimit  config.RateLimitConfig

	// AI pipeline
	enhancer   ai.Enhancer
	calendar   ai.Calendar
	defaultLoc *time.Location
}

// Config is the dependency bag passed to New().
type Config struct {
	Port            int
	Mode            string
	Environment     string
	ShutdownTimeout time.Duration

	PostgresDB *sql.DB
	JWTManager scope.Manager
	// Metrics is optional; /metrics is only served when set.
	Metrics   *metrics.Collector
	CORS      config.CORSConfig
	RateLimit config.RateLimitConfig

	Enhancer ai.Enhancer
	// Calendar is optional.
	Calendar        ai.Calendar
	DefaultLocation *time.Location
}

// New creates a new HTTPServer with every route registered.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}
	if cfg.DefaultLocation == nil {
		cfg.DefaultLocation = time.UTC
	}

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		shutdownTimeout: cfg.ShutdownTimeout,
		postgresDB:      cfg.PostgresDB,
		jwtManager:      cfg.JWTManager,
		metrics:         cfg.Metrics,
		cors:            cfg.CORS,
		rateLimit:       cfg.RateLimit,
		enhancer:        cfg.Enhancer,
		calendar:        cfg.Calendar,
		defaultLoc:      cfg.DefaultLocation,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}
	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.postgresDB == nil {
		return errors.New("postgres db is required")
	}
	if srv.jwtManager == nil {
		return errors.New("jwt manager is required")
	}
	if srv.enhancer == nil {
		return errors.New("enhancer is required")
	}
	return nil
}
