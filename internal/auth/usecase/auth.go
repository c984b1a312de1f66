package usecase

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"

	"ai-task-planner/internal/auth"
	repo "ai-task-planner/internal/auth/repository"
	"ai-task-planner/internal/model"
	"ai-task-planner/pkg/scope"
)

// Register creates a user with a bcrypt password hash and returns an access token.
func (uc *implUseCase) Register(ctx context.Context, input auth.RegisterInput) (auth.AuthOutput, error) {
	if utf8.RuneCountInString(input.Password) < auth.MinPasswordLength {
		return auth.AuthOutput{}, auth.ErrWeakPassword
	}

	tz := strings.TrimSpace(input.Timezone)
	if tz == "" {
		tz = uc.defaultTimezone
	}
	if tz == "" {
		tz = "UTC"
	}
	if _, err := time.LoadLocation(tz); err != nil {
		return auth.AuthOutput{}, auth.ErrInvalidTimezone
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), uc.cost)
	if err != nil {
		uc.l.Errorf(ctx, "auth.usecase.Register GenerateFromPassword: %v", err)
		return auth.AuthOutput{}, err
	}

	u, err := uc.repo.CreateUser(ctx, repo.CreateUserOptions{
		Email:        normalizeEmail(input.Email),
		PasswordHash: string(hash),
		Name:         strings.TrimSpace(input.Name),
		Timezone:     tz,
	})
	if errors.Is(err, repo.ErrDuplicateEmail) {
		return auth.AuthOutput{}, auth.ErrEmailTaken
	}
	if err != nil {
		uc.l.Errorf(ctx, "auth.usecase.Register CreateUser: %v", err)
		return auth.AuthOutput{}, err
	}

	return uc.issue(ctx, u)
}

// Login checks the password and returns a fresh access token.
func (uc *implUseCase) Login(ctx context.Context, input auth.LoginInput) (auth.AuthOutput, error) {
	u, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{Email: normalizeEmail(input.Email)})
	if err != nil {
		uc.l.Errorf(ctx, "auth.usecase.Login GetOneUser: %v", err)
		return auth.AuthOutput{}, err
	}
	if u.ID == "" {
		return auth.AuthOutput{}, auth.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(input.Password)); err != nil {
		return auth.AuthOutput{}, auth.ErrInvalidCredentials
	}

	return uc.issue(ctx, u)
}

func (uc *implUseCase) issue(ctx context.Context, u model.User) (auth.AuthOutput, error) {
	token, err := uc.tokens.CreateToken(scope.Payload{UserID: u.ID, Email: u.Email, Timezone: u.Timezone})
	if err != nil {
		uc.l.Errorf(ctx, "auth.usecase.issue CreateToken: %v", err)
		return auth.AuthOutput{}, err
	}
	u.PasswordHash = ""
	return auth.AuthOutput{User: u, AccessToken: token}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
