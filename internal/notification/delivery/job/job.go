package job

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"ai-task-planner/internal/notification"
	"ai-task-planner/pkg/log"
)

// DefaultSpec runs the sweep once a minute.
const DefaultSpec = "@every 1m"

var ErrAlreadyRegistered = errors.New("sweep job already registered")

// Config configures the sweep schedule.
type Config struct {
	Spec     string
	Location *time.Location
}

// SweepJob periodically marks due reminders as sent.
type SweepJob struct {
	l       log.Logger
	uc      notification.UseCase
	cron    *cron.Cron
	spec    string
	now     func() time.Time
	entryID cron.EntryID
}

// New creates a SweepJob. Overlapping runs are skipped.
func New(l log.Logger, uc notification.UseCase, cfg Config) *SweepJob {
	if cfg.Spec == "" {
		cfg.Spec = DefaultSpec
	}
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}

	logger := cronLogger{l: l}
	return &SweepJob{
		l:    l,
		uc:   uc,
		spec: cfg.Spec,
		now:  time.Now,
		cron: cron.New(
			cron.WithLocation(cfg.Location),
			cron.WithLogger(logger),
			cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger)),
		),
	}
}

// Register adds the sweep to the schedule.
func (j *SweepJob) Register() error {
	if j.entryID != 0 {
		return ErrAlreadyRegistered
	}
	id, err := j.cron.AddFunc(j.spec, func() {
		if _, err := j.RunOnce(context.Background()); err != nil {
			j.l.Errorf(context.Background(), "notification.job.Sweep: %v", err)
		}
	})
	if err != nil {
		return fmt.Errorf("invalid sweep spec %q: %w", j.spec, err)
	}
	j.entryID = id
	return nil
}

// RunOnce executes a single sweep pass and returns how many reminders it dispatched.
func (j *SweepJob) RunOnce(ctx context.Context) (int, error) {
	out, err := j.uc.Sweep(ctx, j.now())
	if err != nil {
		return 0, err
	}
	return len(out.Dispatched), nil
}

func (j *SweepJob) Start() {
	j.l.Infof(context.Background(), "notification.job: sweep scheduled with spec %q", j.spec)
	j.cron.Start()
}

// Stop halts the scheduler and waits for a running sweep or ctx, whichever ends first.
func (j *SweepJob) Stop(ctx context.Context) {
	done := j.cron.Stop()
	select {
	case <-done.Done():
	case <-ctx.Done():
		j.l.Warnf(ctx, "notification.job: stop timed out waiting for running sweep")
	}
}

// cronLogger adapts log.Logger to cron.Logger.
type cronLogger struct {
	l log.Logger
}

func (c cronLogger) Info(msg string, keysAndValues ...any) {
	c.l.Debugf(context.Background(), "cron: %s %v", msg, keysAndValues)
}

func (c cronLogger) Error(err error, msg string, keysAndValues ...any) {
	c.l.Errorf(context.Background(), "cron: %s %v: %v", msg, keysAndValues, err)
}
