package repository

import (
	"context"

	"ai-task-planner/internal/model"
)

//go:generate mockery --name Repository
type Repository interface {
	// CreateUser returns ErrDuplicateEmail when the email is taken.
	CreateUser(ctx context.Context, opt CreateUserOptions) (model.User, error)
	// GetOneUser returns a zero User (ID == "") when nothing matches.
	GetOneUser(ctx context.Context, opt GetOneUserOptions) (model.User, error)
}
