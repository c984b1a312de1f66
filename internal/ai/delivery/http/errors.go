package http

import (
	"errors"
	"net/http"

	"ai-task-planner/internal/ai"
	pkgErrors "ai-task-planner/pkg/errors"
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, ai.ErrInvalidInput):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "text length out of range")
	case errors.Is(err, ai.ErrInvalidDay):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "unrecognized day")
	case errors.Is(err, ai.ErrNoTasksExtracted):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, ai.ErrNoTasksExtracted.Error())
	default:
		// ai.ErrPersistence included.
		return pkgErrors.ErrInternalServerError
	}
}
