package http

import (
	"errors"
	"net/http"

	"ai-task-planner/internal/notification"
	pkgErrors "ai-task-planner/pkg/errors"
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, notification.ErrNotificationNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "notification not found")
	case errors.Is(err, notification.ErrTaskNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "task not found")
	case errors.Is(err, notification.ErrInvalidTitle), errors.Is(err, notification.ErrInvalidSendAt):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
