package ai

import "errors"

var (
	ErrInvalidInput     = errors.New("invalid input text")
	ErrInvalidDay       = errors.New("invalid reference day")
	ErrNoTasksExtracted = errors.New("could not extract tasks from text")
	ErrPersistence      = errors.New("failed to persist tasks")
)
