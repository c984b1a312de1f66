package usecase

import (
	"context"
	"strings"

	"ai-task-planner/internal/model"
	"ai-task-planner/internal/task"
	repo "ai-task-planner/internal/task/repository"
)

// Create persists a task and schedules its reminders.
// The end of a timed task is derived from its duration in the user's timezone.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input task.CreateInput) (task.CreateOutput, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return task.CreateOutput{}, task.ErrInvalidTitle
	}
	if input.Date.IsZero() {
		return task.CreateOutput{}, task.ErrInvalidDate
	}
	if input.DurationMinutes != nil && *input.DurationMinutes <= 0 {
		return task.CreateOutput{}, task.ErrInvalidDuration
	}

	date := input.Date.In(sc.Location(uc.defaultLoc))
	endDate, duration := task.ResolveEnd(date, input.AllDay, input.DurationMinutes)

	t, err := uc.repo.CreateTask(ctx, repo.CreateTaskOptions{
		UserID:          sc.UserID,
		Title:           title,
		Description:     strings.TrimSpace(input.Description),
		Date:            date,
		EndDate:         endDate,
		AllDay:          input.AllDay,
		DurationMinutes: duration,
	})
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.Create CreateTask: %v", err)
		return task.CreateOutput{}, err
	}

	notifications, err := uc.scheduler.ScheduleForTask(ctx, sc, t)
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.Create ScheduleForTask task=%s: %v", t.ID, err)
		return task.CreateOutput{}, err
	}

	return task.CreateOutput{Task: t, Notifications: notifications}, nil
}
