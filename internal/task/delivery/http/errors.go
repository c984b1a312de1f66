package http

import (
	"errors"
	"net/http"

	"ai-task-planner/internal/task"
	pkgErrors "ai-task-planner/pkg/errors"
)

var errMissingScope = pkgErrors.ErrUnauthorized

// mapError translates task use-case errors into HTTP errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, task.ErrTaskNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "task not found")
	case errors.Is(err, task.ErrInvalidTitle):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "title must not be blank")
	case errors.Is(err, task.ErrInvalidDate):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "date is required")
	case errors.Is(err, task.ErrInvalidDuration):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "duration_minutes must be positive")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
