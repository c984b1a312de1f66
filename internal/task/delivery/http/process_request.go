package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"ai-task-planner/internal/model"
)

var errEmptyUpdate = errors.New("at least one field must be provided")

// processScope returns the authenticated caller set by the Auth middleware.
func (h *handler) processScope(c *gin.Context) (model.Scope, error) {
	sc, ok := model.ScopeFromContext(c.Request.Context())
	if !ok {
		return model.Scope{}, errMissingScope
	}
	return sc, nil
}

// processCreateReq binds and validates the create task request body.
func (h *handler) processCreateReq(c *gin.Context) (model.Scope, createReq, error) {
	var req createReq
	sc, err := h.processScope(c)
	if err != nil {
		return sc, req, err
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return sc, req, err
	}
	return sc, req, req.validate()
}

// processIDReq binds the task ID URI param.
func (h *handler) processIDReq(c *gin.Context) (model.Scope, string, error) {
	var req idReq
	sc, err := h.processScope(c)
	if err != nil {
		return sc, "", err
	}
	if err := c.ShouldBindUri(&req); err != nil {
		return sc, "", err
	}
	return sc, req.ID, nil
}

// processUpdateReq binds and validates the update body + URI param.
func (h *handler) processUpdateReq(c *gin.Context) (model.Scope, updateReq, error) {
	var req updateReq
	sc, id, err := h.processIDReq(c)
	if err != nil {
		return sc, req, err
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return sc, req, err
	}
	req.ID = id
	return sc, req, req.validate()
}
