package http

import (
	"ai-task-planner/internal/notification"
	"ai-task-planner/pkg/log"
)

type handler struct {
	l  log.Logger
	uc notification.UseCase
}

// New creates a new HTTP handler for the notification domain.
func New(l log.Logger, uc notification.UseCase) *handler {
	return &handler{l: l, uc: uc}
}
