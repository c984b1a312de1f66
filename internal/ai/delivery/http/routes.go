package http

import (
	"github.com/gin-gonic/gin"

	"ai-task-planner/internal/middleware"
)

// RegisterRoutes maps the text endpoints. They call out to the LLM, so they
// are rate limited per user on top of authentication.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	g := rg.Group("/ai", mw.Auth(), mw.RateLimit())
	{
		g.POST("/create", h.CreateFromText)
		g.POST("/enhance", h.EnhanceText)
		g.POST("/preview", h.Preview)
	}
}
