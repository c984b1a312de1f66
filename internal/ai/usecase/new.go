package usecase

import (
	"time"

	"ai-task-planner/internal/ai"
	"ai-task-planner/pkg/log"
	"ai-task-planner/pkg/metrics"
)

const (
	minTextRunes = 3
	maxTextRunes = 2000

	// defaultEventMinutes is the calendar event length of a task without an end.
	defaultEventMinutes = 60
)

type implUseCase struct {
	l          log.Logger
	enhancer   ai.Enhancer
	tasks      ai.TaskStore
	calendar   ai.Calendar
	metrics    *metrics.Collector
	defaultLoc *time.Location
	now        func() time.Time
}

// Options holds the optional collaborators of the use case.
type Options struct {
	// Calendar mirrors timed tasks when set.
	Calendar   ai.Calendar
	Metrics    *metrics.Collector
	DefaultLoc *time.Location
}

// New creates the text-to-task use case.
func New(l log.Logger, enhancer ai.Enhancer, tasks ai.TaskStore, opts Options) *implUseCase {
	if opts.DefaultLoc == nil {
		opts.DefaultLoc = time.UTC
	}
	return &implUseCase{
		l:          l,
		enhancer:   enhancer,
		tasks:      tasks,
		calendar:   opts.Calendar,
		metrics:    opts.Metrics,
		defaultLoc: opts.DefaultLoc,
		now:        time.Now,
	}
}
