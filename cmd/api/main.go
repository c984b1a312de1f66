package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"ai-task-planner/config"
	"ai-task-planner/config/postgre"
	_ "ai-task-planner/docs" // Swagger docs
	"ai-task-planner/internal/ai"
	"ai-task-planner/internal/ai/enhancer"
	"ai-task-planner/internal/httpserver"
	"ai-task-planner/internal/migration"
	"ai-task-planner/pkg/gcalendar"
	"ai-task-planner/pkg/log"
	"ai-task-planner/pkg/metrics"
	"ai-task-planner/pkg/scope"
)

// @title       AI Task Planner API
// @description Turns free-form Portuguese text into scheduled tasks and reminders.
// @version     1
// @host        localhost:8080
// @schemes     http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
		FilePath:     cfg.Logger.FilePath,
		MaxSizeMB:    cfg.Logger.MaxSizeMB,
		MaxBackups:   cfg.Logger.MaxBackups,
		MaxAgeDays:   cfg.Logger.MaxAgeDays,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting AI Task Planner API...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Infrastructure
	var collector *metrics.Collector
	if cfg.Metrics.Enabled {
		collector = metrics.NewCollector(metrics.Namespace)
	}

	postgresDB, err := postgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Error(ctx, "Failed to connect to PostgreSQL: ", err)
		return
	}
	defer postgre.Disconnect(postgresDB)

	if _, err := migration.NewRunner(postgresDB, migration.Files(), logger).Up(ctx); err != nil {
		logger.Error(ctx, "Failed to migrate database: ", err)
		return
	}

	defaultLoc, err := time.LoadLocation(cfg.AI.DefaultTimezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.AI.DefaultTimezone, err)
		defaultLoc = time.UTC
	}

	tokenTTL, err := time.ParseDuration(cfg.JWT.TTL)
	if err != nil {
		logger.Error(ctx, "Invalid jwt.ttl: ", err)
		return
	}
	jwtManager := scope.New(cfg.JWT.Secret, cfg.JWT.Issuer, tokenTTL)

	// 4. AI pipeline
	textEnhancer, err := enhancer.FromConfig(ctx, logger, cfg.AI, cfg.LLM, collector)
	if err != nil {
		logger.Error(ctx, "Failed to initialize enhancer: ", err)
		return
	}

	// Google Calendar client (optional)
	var calendar ai.Calendar
	if cfg.GoogleCalendar.CredentialsPath != "" {
		client, calErr := gcalendar.New(ctx, gcalendar.Config{
			CredentialsPath: cfg.GoogleCalendar.CredentialsPath,
			TokenPath:       cfg.GoogleCalendar.TokenPath,
			CalendarID:      cfg.GoogleCalendar.CalendarID,
		})
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
		} else {
			calendar = client
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	shutdownTimeout, err := time.ParseDuration(cfg.HTTPServer.ShutdownTimeout)
	if err != nil {
		logger.Warnf(ctx, "Invalid http_server.shutdown_timeout %q: %v", cfg.HTTPServer.ShutdownTimeout, err)
	}

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ShutdownTimeout: shutdownTimeout,
		PostgresDB:      postgresDB,
		JWTManager:      jwtManager,
		Metrics:         collector,
		CORS:            cfg.CORS,
		RateLimit:       cfg.RateLimit,
		Enhancer:        textEnhancer,
		Calendar:        calendar,
		DefaultLocation: defaultLoc,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
