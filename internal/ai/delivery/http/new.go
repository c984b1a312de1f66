package http

import (
	"ai-task-planner/internal/ai"
	"ai-task-planner/pkg/log"
)

type handler struct {
	l  log.Logger
	uc ai.UseCase
}

// New creates a new HTTP handler for the text-to-task endpoints.
func New(l log.Logger, uc ai.UseCase) *handler {
	return &handler{l: l, uc: uc}
}
