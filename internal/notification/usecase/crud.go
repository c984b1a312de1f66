package usecase

import (
	"context"
	"strings"

	"ai-task-planner/internal/model"
	"ai-task-planner/internal/notification"
	repo "ai-task-planner/internal/notification/repository"
)

// Create stores a manual reminder, optionally linked to one of the caller's tasks.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input notification.CreateInput) (notification.CreateOutput, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return notification.CreateOutput{}, notification.ErrInvalidTitle
	}
	if input.SendAt.IsZero() {
		return notification.CreateOutput{}, notification.ErrInvalidSendAt
	}

	n, err := uc.repo.CreateNotification(ctx, repo.CreateNotificationOptions{
		UserID: sc.UserID,
		TaskID: input.TaskID,
		Title:  title,
		Body:   strings.TrimSpace(input.Body),
		SendAt: input.SendAt,
	})
	if err != nil {
		uc.l.Errorf(ctx, "notification.usecase.Create CreateNotification: %v", err)
		return notification.CreateOutput{}, err
	}
	if n.ID == "" {
		return notification.CreateOutput{}, notification.ErrTaskNotFound
	}

	uc.metrics.AddNotificationsScheduled(1)
	return notification.CreateOutput{Notification: n}, nil
}

// List returns the caller's reminders ordered by send_at.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope) (notification.ListOutput, error) {
	ns, err := uc.repo.ListNotifications(ctx, repo.ListNotificationsOptions{UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "notification.usecase.List ListNotifications: %v", err)
		return notification.ListOutput{}, err
	}
	return notification.ListOutput{Notifications: ns}, nil
}

// Update sets the sent flag of one of the caller's reminders.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input notification.UpdateInput) (notification.UpdateOutput, error) {
	n, err := uc.repo.UpdateNotification(ctx, repo.UpdateNotificationOptions{
		ID:     input.ID,
		UserID: sc.UserID,
		Sent:   input.Sent,
	})
	if err != nil {
		uc.l.Errorf(ctx, "notification.usecase.Update UpdateNotification: %v", err)
		return notification.UpdateOutput{}, err
	}
	if n.ID == "" {
		return notification.UpdateOutput{}, notification.ErrNotificationNotFound
	}
	return notification.UpdateOutput{Notification: n}, nil
}

func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	existing, err := uc.repo.GetOneNotification(ctx, repo.GetOneNotificationOptions{ID: id, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "notification.usecase.Delete GetOneNotification: %v", err)
		return err
	}
	if existing.ID == "" {
		return notification.ErrNotificationNotFound
	}

	if err := uc.repo.DeleteNotification(ctx, repo.DeleteNotificationOptions{ID: id, UserID: sc.UserID}); err != nil {
		uc.l.Errorf(ctx, "notification.usecase.Delete DeleteNotification: %v", err)
		return err
	}
	return nil
}
