package ai

import (
	"context"

	"ai-task-planner/internal/model"
	"ai-task-planner/internal/task"
	"ai-task-planner/pkg/gcalendar"
)

//go:generate mockery --name UseCase
type UseCase interface {
	CreateFromText(ctx context.Context, sc model.Scope, input CreateFromTextInput) (CreateFromTextOutput, error)
	EnhanceText(ctx context.Context, input EnhanceTextInput) (EnhanceTextOutput, error)
	Preview(ctx context.Context, sc model.Scope, input PreviewInput) (PreviewOutput, error)
}

// Enhancer rewrites free text into one task per line.
// Implementations never fail: they degrade to a local transform instead.
type Enhancer interface {
	Enhance(ctx context.Context, text string) string
}

// Calendar mirrors timed tasks into an external calendar.
type Calendar interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
}

// TaskStore persists one task together with its reminders.
type TaskStore interface {
	Create(ctx context.Context, sc model.Scope, input task.CreateInput) (task.CreateOutput, error)
}
