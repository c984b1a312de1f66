package model

import (
	"context"
	"time"

	"ai-task-planner/pkg/scope"
)

// Scope identifies the authenticated caller of a use case.
type Scope struct {
	UserID   string
	Email    string
	Timezone string
}

// NewScope builds a Scope from a verified token payload.
func NewScope(payload scope.Payload) Scope {
	return Scope{
		UserID:   payload.UserID,
		Email:    payload.Email,
		Timezone: payload.Timezone,
	}
}

// Location resolves the caller's timezone, falling back to def when the
// scope carries none or an unknown one.
func (s Scope) Location(def *time.Location) *time.Location {
	if s.Timezone != "" {
		if loc, err := time.LoadLocation(s.Timezone); err == nil {
			return loc
		}
	}
	if def == nil {
		return time.UTC
	}
	return def
}

// ScopeFromContext returns the Scope of the authenticated request, if any.
func ScopeFromContext(ctx context.Context) (Scope, bool) {
	payload, ok := scope.GetPayloadFromContext(ctx)
	if !ok || payload.UserID == "" {
		return Scope{}, false
	}
	return NewScope(payload), true
}
