package task

import (
	"time"

	"ai-task-planner/internal/model"
	"ai-task-planner/pkg/datemath"
)

// --- UseCase Inputs ---

type CreateInput struct {
	Title           string
	Description     string
	Date            time.Time
	AllDay          bool
	DurationMinutes *int
}

// UpdateInput is a partial update; nil fields are left unchanged.
type UpdateInput struct {
	ID              string
	Title           *string
	Description     *string
	Date            *time.Time
	Done            *bool
	AllDay          *bool
	DurationMinutes *int
}

// Temporal reports whether the update touches the task's time window.
func (in UpdateInput) Temporal() bool {
	return in.Date != nil || in.AllDay != nil || in.DurationMinutes != nil
}

// --- UseCase Outputs ---

type CreateOutput struct {
	Task          model.Task
	Notifications []model.Notification
}

type ListOutput struct {
	Tasks []model.Task
}

type UpdateOutput struct {
	Task model.Task
}

// ResolveEnd derives the end of a timed task on the same calendar day as
// date. All-day tasks, and tasks without a duration, have no end.
func ResolveEnd(date time.Time, allDay bool, durationMinutes *int) (*time.Time, *int) {
	if allDay || durationMinutes == nil {
		return nil, nil
	}
	clock := datemath.AddDuration(datemath.ClockOf(date), *durationMinutes)
	end := datemath.At(date, clock)
	minutes := *durationMinutes
	return &end, &minutes
}
