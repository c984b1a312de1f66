package notification

import (
	"context"
	"time"

	"ai-task-planner/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Create(ctx context.Context, sc model.Scope, input CreateInput) (CreateOutput, error)
	List(ctx context.Context, sc model.Scope) (ListOutput, error)
	Update(ctx context.Context, sc model.Scope, input UpdateInput) (UpdateOutput, error)
	Delete(ctx context.Context, sc model.Scope, id string) error

	// ScheduleForTask creates the start (and end, when set) reminders of a timed task.
	// All-day tasks get none.
	ScheduleForTask(ctx context.Context, sc model.Scope, t model.Task) ([]model.Notification, error)
	DeleteByTask(ctx context.Context, sc model.Scope, taskID string) error

	// Sweep marks every unsent reminder due at now as sent.
	Sweep(ctx context.Context, now time.Time) (SweepOutput, error)
}
