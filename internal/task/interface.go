package task

import (
	"context"

	"ai-task-planner/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Create(ctx context.Context, sc model.Scope, input CreateInput) (CreateOutput, error)
	List(ctx context.Context, sc model.Scope) (ListOutput, error)
	Update(ctx context.Context, sc model.Scope, input UpdateInput) (UpdateOutput, error)
	Delete(ctx context.Context, sc model.Scope, id string) error
}

// Scheduler keeps a task's reminders in step with its time window.
type Scheduler interface {
	ScheduleForTask(ctx context.Context, sc model.Scope, t model.Task) ([]model.Notification, error)
	DeleteByTask(ctx context.Context, sc model.Scope, taskID string) error
}
