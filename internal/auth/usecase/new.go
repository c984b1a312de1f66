package usecase

import (
	"golang.org/x/crypto/bcrypt"

	"ai-task-planner/internal/auth/repository"
	"ai-task-planner/pkg/log"
	"ai-task-planner/pkg/scope"
)

type implUseCase struct {
	l               log.Logger
	repo            repository.Repository
	tokens          scope.Manager
	defaultTimezone string
	cost            int
}

// New creates the auth UseCase. defaultTimezone is assigned to users who register without one.
func New(l log.Logger, repo repository.Repository, tokens scope.Manager, defaultTimezone string) *implUseCase {
	return &implUseCase{
		l:               l,
		repo:            repo,
		tokens:          tokens,
		defaultTimezone: defaultTimezone,
		cost:            bcrypt.DefaultCost,
	}
}
