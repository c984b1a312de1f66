package notification

import (
	"time"

	"ai-task-planner/internal/model"
)

// --- UseCase Inputs ---

type CreateInput struct {
	TaskID *string
	Title  string
	Body   string
	SendAt time.Time
}

type UpdateInput struct {
	ID   string
	Sent bool
}

// --- UseCase Outputs ---

type CreateOutput struct {
	Notification model.Notification
}

type ListOutput struct {
	Notifications []model.Notification
}

type UpdateOutput struct {
	Notification model.Notification
}

// SweepOutput lists the reminders a sweep pass dispatched.
type SweepOutput struct {
	Dispatched []model.Notification
}
