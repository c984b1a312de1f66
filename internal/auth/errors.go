package auth

import "errors"

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidTimezone    = errors.New("invalid timezone")
	ErrWeakPassword       = errors.New("password too short")
)
