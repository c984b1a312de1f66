package repository

import "time"

// CreateTaskOptions holds parameters for inserting a new Task.
type CreateTaskOptions struct {
	UserID          string
	Title           string
	Description     string
	Date            time.Time
	EndDate         *time.Time
	AllDay          bool
	DurationMinutes *int
}

// GetOneTaskOptions holds filter parameters for fetching a single Task.
// All non-empty fields are applied as AND conditions.
type GetOneTaskOptions struct {
	ID     string
	UserID string
}

// ListTasksOptions lists a user's tasks ordered by date ascending.
type ListTasksOptions struct {
	UserID string
	From   *time.Time
	To     *time.Time
}

// UpdateTaskOptions replaces every mutable column of a Task.
type UpdateTaskOptions struct {
	ID              string
	UserID          string
	Title           string
	Description     string
	Date            time.Time
	EndDate         *time.Time
	AllDay          bool
	DurationMinutes *int
	Done            bool
}

// DeleteTaskOptions scopes a delete to its owner.
type DeleteTaskOptions struct {
	ID     string
	UserID string
}
