package auth

import "ai-task-planner/internal/model"

// MinPasswordLength is the shortest accepted password.
const MinPasswordLength = 6

type RegisterInput struct {
	Email    string
	Password string
	Name     string
	// Timezone is an IANA name; empty uses the service default.
	Timezone string
}

type LoginInput struct {
	Email    string
	Password string
}

// AuthOutput is returned by both Register and Login.
type AuthOutput struct {
	User        model.User
	AccessToken string
}
