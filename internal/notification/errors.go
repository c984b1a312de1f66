package notification

import "errors"

var (
	ErrNotificationNotFound = errors.New("notification not found")
	ErrInvalidTitle         = errors.New("title must not be blank")
	ErrInvalidSendAt        = errors.New("send_at is required")
	// ErrTaskNotFound is returned when a reminder references a task the caller does not own.
	ErrTaskNotFound = errors.New("referenced task not found")
)
