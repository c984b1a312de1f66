package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"ai-task-planner/config"
	"ai-task-planner/config/postgre"
	"ai-task-planner/internal/notification/delivery/job"
	notifRepo "ai-task-planner/internal/notification/repository/postgre"
	notifUC "ai-task-planner/internal/notification/usecase"
	"ai-task-planner/pkg/log"
	"ai-task-planner/pkg/metrics"
)

const stopTimeout = 30 * time.Second

// main runs the reminder sweep on its cron schedule.
//
//  1. Initialize infra (same as cmd/api/main.go)
//  2. Create the notification UseCase
//  3. Register the sweep job
//  4. Run & graceful shutdown
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

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

	logger.Info(ctx, "Starting reminder scheduler...")

	postgresDB, err := postgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Error(ctx, "Failed to connect to PostgreSQL: ", err)
		return
	}
	defer postgre.Disconnect(postgresDB)

	loc, err := time.LoadLocation(cfg.Scheduler.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid scheduler.timezone %q, falling back to UTC: %v", cfg.Scheduler.Timezone, err)
		loc = time.UTC
	}
	defaultLoc, err := time.LoadLocation(cfg.AI.DefaultTimezone)
	if err != nil {
		defaultLoc = time.UTC
	}

	var collector *metrics.Collector
	if cfg.Metrics.Enabled {
		collector = metrics.NewCollector(metrics.Namespace)
		go serveMetrics(ctx, logger, collector, cfg.HTTPServer.Port+1)
	}

	repo := notifRepo.New(postgresDB, logger)
	uc := notifUC.New(logger, repo, collector, defaultLoc)

	sweep := job.New(logger, uc, job.Config{Spec: cfg.Scheduler.SweepSpec, Location: loc})
	if err := sweep.Register(); err != nil {
		logger.Error(ctx, "Failed to register sweep: ", err)
		return
	}
	sweep.Start()

	<-ctx.Done()
	logger.Info(ctx, "Shutting down scheduler...")

	stopCtx, cancel := context.WithTimeout(context.Background(), stopTimeout)
	defer cancel()
	sweep.Stop(stopCtx)

	logger.Info(ctx, "Scheduler stopped gracefully")
}

func serveMetrics(ctx context.Context, l log.Logger, m *metrics.Collector, port int) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	server := &http.Server{Addr: fmt.Sprintf(":%d", port), Handler: mux}

	go func() {
		<-ctx.Done()
		server.Close()
	}()

	l.Infof(ctx, "Metrics on :%d/metrics", port)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		l.Warnf(ctx, "metrics server: %v", err)
	}
}
