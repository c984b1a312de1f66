package http

import (
	"github.com/gin-gonic/gin"

	"ai-task-planner/internal/middleware"
)

// RegisterRoutes maps the task endpoints. Every route requires a valid token.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	tasks := rg.Group("/tasks", mw.Auth())
	{
		tasks.POST("", h.Create)
		tasks.GET("", h.List)
		tasks.PATCH("/:id", h.Update)
		tasks.DELETE("/:id", h.Delete)
	}
}
