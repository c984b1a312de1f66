package http

import (
	"github.com/gin-gonic/gin"

	"ai-task-planner/internal/model"
	pkgErrors "ai-task-planner/pkg/errors"
)

func (h *handler) processScope(c *gin.Context) (model.Scope, error) {
	sc, ok := model.ScopeFromContext(c.Request.Context())
	if !ok {
		return model.Scope{}, pkgErrors.ErrUnauthorized
	}
	return sc, nil
}

// processReq binds the JSON body of any text request for an authenticated caller.
func processReq[T any](h *handler, c *gin.Context) (model.Scope, T, error) {
	var req T
	sc, err := h.processScope(c)
	if err != nil {
		return sc, req, err
	}
	return sc, req, c.ShouldBindJSON(&req)
}
