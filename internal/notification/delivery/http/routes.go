package http

import (
	"github.com/gin-gonic/gin"

	"ai-task-planner/internal/middleware"
)

// RegisterRoutes maps the notification endpoints. Every route requires a valid token.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	ns := rg.Group("/notifications", mw.Auth())
	{
		ns.POST("", h.Create)
		ns.GET("", h.List)
		ns.PATCH("/:id", h.Update)
		ns.DELETE("/:id", h.Delete)
	}
}
