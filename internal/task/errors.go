package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrTaskNotFound    = errors.New("task not found")
	ErrInvalidTitle    = errors.New("task title is empty")
	ErrInvalidDate     = errors.New("task date is required")
	ErrInvalidDuration = errors.New("duration must be a positive number of minutes")
)
