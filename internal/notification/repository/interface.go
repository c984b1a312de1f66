package repository

import (
	"context"

	"ai-task-planner/internal/model"
)

//go:generate mockery --name Repository
type Repository interface {
	NotificationRepository
}

// NotificationRepository defines all data access methods for the Notification entity.
type NotificationRepository interface {
	// CreateNotification returns a zero Notification when the referenced task is not the user's.
	CreateNotification(ctx context.Context, opt CreateNotificationOptions) (model.Notification, error)
	// GetOneNotification returns a zero Notification (ID == "") when nothing matches.
	GetOneNotification(ctx context.Context, opt GetOneNotificationOptions) (model.Notification, error)
	ListNotifications(ctx context.Context, opt ListNotificationsOptions) ([]model.Notification, error)
	ListDue(ctx context.Context, opt ListDueOptions) ([]model.Notification, error)
	UpdateNotification(ctx context.Context, opt UpdateNotificationOptions) (model.Notification, error)
	// MarkSent flips sent=true for the given IDs and returns how many rows changed.
	MarkSent(ctx context.Context, ids []string) (int64, error)
	DeleteNotification(ctx context.Context, opt DeleteNotificationOptions) error
	DeleteByTask(ctx context.Context, opt DeleteByTaskOptions) error
}
