package model

import "time"

// Task is a time-scoped item owned by a user.
// AllDay tasks never carry an EndDate or DurationMinutes.
type Task struct {
	ID              string
	UserID          string
	Title           string
	Description     string
	Date            time.Time
	EndDate         *time.Time
	AllDay          bool
	DurationMinutes *int
	Done            bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
