package http

import (
	"github.com/gin-gonic/gin"

	"ai-task-planner/internal/middleware"
)

// RegisterRoutes maps the public auth endpoints, rate limited per client IP.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	g := rg.Group("/auth", mw.RateLimit())
	{
		g.POST("/register", h.Register)
		g.POST("/login", h.Login)
	}
}
