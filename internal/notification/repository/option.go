package repository

import "time"

// CreateNotificationOptions holds parameters for inserting a Notification.
// When TaskID is set the row is only inserted if that task belongs to UserID.
type CreateNotificationOptions struct {
	UserID string
	TaskID *string
	Title  string
	Body   string
	SendAt time.Time
}

// GetOneNotificationOptions holds filter parameters for fetching a single Notification.
type GetOneNotificationOptions struct {
	ID     string
	UserID string
}

// ListNotificationsOptions lists a user's reminders ordered by send_at ascending.
type ListNotificationsOptions struct {
	UserID string
}

// ListDueOptions selects unsent reminders with send_at <= Now.
type ListDueOptions struct {
	Now   time.Time
	Limit int
}

type UpdateNotificationOptions struct {
	ID     string
	UserID string
	Sent   bool
}

type DeleteNotificationOptions struct {
	ID     string
	UserID string
}

type DeleteByTaskOptions struct {
	TaskID string
	UserID string
}
