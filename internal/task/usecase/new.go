package usecase

import (
	"time"

	"ai-task-planner/internal/task"
	"ai-task-planner/internal/task/repository"
	"ai-task-planner/pkg/log"
)

// implUseCase is the private implementation of task.UseCase.
type implUseCase struct {
	l          log.Logger
	repo       repository.Repository
	scheduler  task.Scheduler
	defaultLoc *time.Location
}

// New creates a new task UseCase. defaultLoc is used for users without a timezone.
func New(l log.Logger, repo repository.Repository, scheduler task.Scheduler, defaultLoc *time.Location) *implUseCase {
	if defaultLoc == nil {
		defaultLoc = time.UTC
	}
	return &implUseCase{
		l:          l,
		repo:       repo,
		scheduler:  scheduler,
		defaultLoc: defaultLoc,
	}
}
