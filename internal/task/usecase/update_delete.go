package usecase

import (
	"context"
	"strings"

	"ai-task-planner/internal/model"
	"ai-task-planner/internal/task"
	repo "ai-task-planner/internal/task/repository"
)

// Update applies a partial update. A change to date, all_day or duration
// recomputes the end and replaces the task's reminders.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input task.UpdateInput) (task.UpdateOutput, error) {
	existing, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{ID: input.ID, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.Update GetOneTask: %v", err)
		return task.UpdateOutput{}, err
	}
	if existing.ID == "" {
		return task.UpdateOutput{}, task.ErrTaskNotFound
	}

	opt, err := uc.merge(sc, existing, input)
	if err != nil {
		return task.UpdateOutput{}, err
	}

	updated, err := uc.repo.UpdateTask(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.Update UpdateTask: %v", err)
		return task.UpdateOutput{}, err
	}
	if updated.ID == "" {
		return task.UpdateOutput{}, task.ErrTaskNotFound
	}

	if input.Temporal() {
		if err := uc.scheduler.DeleteByTask(ctx, sc, updated.ID); err != nil {
			uc.l.Errorf(ctx, "task.usecase.Update DeleteByTask task=%s: %v", updated.ID, err)
			return task.UpdateOutput{}, err
		}
		if _, err := uc.scheduler.ScheduleForTask(ctx, sc, updated); err != nil {
			uc.l.Errorf(ctx, "task.usecase.Update ScheduleForTask task=%s: %v", updated.ID, err)
			return task.UpdateOutput{}, err
		}
	}

	return task.UpdateOutput{Task: updated}, nil
}

// merge overlays input on existing. Setting a duration on an all-day task
// without an explicit all_day makes it a timed task.
func (uc *implUseCase) merge(sc model.Scope, existing model.Task, input task.UpdateInput) (repo.UpdateTaskOptions, error) {
	opt := repo.UpdateTaskOptions{
		ID:              existing.ID,
		UserID:          sc.UserID,
		Title:           existing.Title,
		Description:     existing.Description,
		Date:            existing.Date,
		EndDate:         existing.EndDate,
		AllDay:          existing.AllDay,
		DurationMinutes: existing.DurationMinutes,
		Done:            existing.Done,
	}

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return repo.UpdateTaskOptions{}, task.ErrInvalidTitle
		}
		opt.Title = title
	}
	if input.Description != nil {
		opt.Description = strings.TrimSpace(*input.Description)
	}
	if input.Done != nil {
		opt.Done = *input.Done
	}

	if !input.Temporal() {
		return opt, nil
	}

	if input.Date != nil {
		if input.Date.IsZero() {
			return repo.UpdateTaskOptions{}, task.ErrInvalidDate
		}
		opt.Date = *input.Date
	}
	if input.DurationMinutes != nil {
		if *input.DurationMinutes <= 0 {
			return repo.UpdateTaskOptions{}, task.ErrInvalidDuration
		}
		opt.DurationMinutes = input.DurationMinutes
		opt.AllDay = false
	}
	if input.AllDay != nil {
		opt.AllDay = *input.AllDay
	}

	opt.Date = opt.Date.In(sc.Location(uc.defaultLoc))
	opt.EndDate, opt.DurationMinutes = task.ResolveEnd(opt.Date, opt.AllDay, opt.DurationMinutes)
	return opt, nil
}

// Delete removes a task owned by the caller; reminders are cascade-deleted.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	existing, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{ID: id, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.Delete GetOneTask: %v", err)
		return err
	}
	if existing.ID == "" {
		return task.ErrTaskNotFound
	}

	if err := uc.repo.DeleteTask(ctx, repo.DeleteTaskOptions{ID: id, UserID: sc.UserID}); err != nil {
		uc.l.Errorf(ctx, "task.usecase.Delete DeleteTask: %v", err)
		return err
	}
	return nil
}
