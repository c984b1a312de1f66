package main

import (
	"context"
	"database/sql"
	"io"
	"os"
	"os/signal"
	"syscall"

	"ai-task-planner/config"
	"ai-task-planner/config/postgre"
	"ai-task-planner/pkg/log"
)

// appContext is bound to every command's Run.
type appContext struct {
	ctx    context.Context
	cancel context.CancelFunc
	cfg    *config.Config
	l      log.Logger
	in     io.Reader
	out    io.Writer

	db *sql.DB
}

func newAppContext(level string, in io.Reader, out io.Writer) (*appContext, error) {
	cfg, err := config.LoadOffline()
	if err != nil {
		return nil, err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	return &appContext{
		ctx:    ctx,
		cancel: cancel,
		cfg:    cfg,
		l:      log.Init(log.ZapConfig{Level: level, Mode: cfg.Logger.Mode, Encoding: cfg.Logger.Encoding}),
		in:     in,
		out:    out,
	}, nil
}

// DB connects on first use; preview and enhance never need it.
func (a *appContext) DB() (*sql.DB, error) {
	if a.db != nil {
		return a.db, nil
	}
	db, err := postgre.Connect(a.ctx, a.cfg.Postgres)
	if err != nil {
		return nil, err
	}
	a.db = db
	return db, nil
}

func (a *appContext) Close() {
	postgre.Disconnect(a.db)
	a.cancel()
}
