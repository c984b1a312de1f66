package middleware

import (
	"github.com/gin-gonic/gin"

	"ai-task-planner/pkg/response"
	"ai-task-planner/pkg/scope"
)

const authorizationHeader = "Authorization"

// Auth verifies the bearer token and stores its payload in the request context.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		payload, err := m.jwtManager.Verify(c.GetHeader(authorizationHeader))
		if err != nil {
			m.l.Debugf(ctx, "middleware.Auth: %v", err)
			response.Unauthorized(c)
			return
		}

		c.Request = c.Request.WithContext(scope.SetPayloadToContext(ctx, payload))
		c.Next()
	}
}
