package log_test

import (
	"context"
	"path/filepath"
	"testing"

	"ai-task-planner/pkg/log"
)

func TestRequestIDContext(t *testing.T) {
	ctx := context.Background()
	if _, ok := log.RequestIDFromContext(ctx); ok {
		t.Fatal("expected no request id on empty context")
	}

	ctx = log.WithRequestID(ctx, "req-1")
	id, ok := log.RequestIDFromContext(ctx)
	if !ok || id != "req-1" {
		t.Errorf("expected req-1, got %q (ok=%v)", id, ok)
	}
}

func TestInit(t *testing.T) {
	l := log.Init(log.ZapConfig{
		Level:    "debug",
		Mode:     "debug",
		Encoding: "console",
		FilePath: filepath.Join(t.TempDir(), "app.log"),
	})

	ctx := log.WithRequestID(context.Background(), "req-2")
	l.Infof(ctx, "hello %s", "world")
	l.Debug(ctx, "debug line")

	nop := log.NewNop()
	nop.Error(ctx, "discarded")
}
