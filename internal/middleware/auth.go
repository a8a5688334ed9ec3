package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"smart-todo/pkg/response"
	"smart-todo/pkg/scope"
)

const bearerPrefix = "Bearer "

// Auth requires a valid bearer token and puts the caller's scope into the
// request context.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, bearerPrefix) {
			response.Unauthorized(c)
			return
		}

		sc, err := m.jwtManager.Verify(strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix)))
		if err != nil {
			m.l.Warnf(ctx, "middleware.Auth: %v", err)
			response.Unauthorized(c)
			return
		}

		c.Request = c.Request.WithContext(scope.SetScopeToContext(ctx, sc))
		c.Next()
	}
}
