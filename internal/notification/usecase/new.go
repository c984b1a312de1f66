package usecase

import (
	"time"

	"ai-task-planner/internal/notification/repository"
	"ai-task-planner/pkg/log"
	"ai-task-planner/pkg/metrics"
)

// sweepBatchSize bounds how many due reminders one sweep pass dispatches.
const sweepBatchSize = 500

type implUseCase struct {
	l          log.Logger
	repo       repository.Repository
	metrics    *metrics.Collector
	defaultLoc *time.Location
}

// New creates a new notification UseCase. m may be nil.
func New(l log.Logger, repo repository.Repository, m *metrics.Collector, defaultLoc *time.Location) *implUseCase {
	if defaultLoc == nil {
		defaultLoc = time.UTC
	}
	return &implUseCase{
		l:          l,
		repo:       repo,
		metrics:    m,
		defaultLoc: defaultLoc,
	}
}
