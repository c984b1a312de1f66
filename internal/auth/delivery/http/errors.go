package http

import (
	"errors"
	"net/http"

	"ai-task-planner/internal/auth"
	pkgErrors "ai-task-planner/pkg/errors"
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, auth.ErrEmailTaken):
		return pkgErrors.NewHTTPError(http.StatusConflict, "email already registered")
	case errors.Is(err, auth.ErrInvalidCredentials):
		return pkgErrors.NewHTTPError(http.StatusUnauthorized, "invalid email or password")
	case errors.Is(err, auth.ErrInvalidTimezone), errors.Is(err, auth.ErrWeakPassword):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
