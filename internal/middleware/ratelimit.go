package middleware

import (
	"math"
	"strconv"

	"github.com/gin-gonic/gin"

	"smart-todo/pkg/response"
	"smart-todo/pkg/scope"
)

// RateLimit bounds requests per owner. It keys on the client IP when the
// route is not authenticated.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.limits.perMin <= 0 {
			c.Next()
			return
		}

		key := c.ClientIP()
		if sc, ok := scope.GetScopeFromContext(c.Request.Context()); ok {
			key = sc.UserID
		}

		r := m.limits.get(key).Reserve()
		if d := r.Delay(); d > 0 {
			r.Cancel()
			m.l.Warnf(c.Request.Context(), "middleware.RateLimit: key=%s retry_in=%s", key, d)
			c.Header("Retry-After", strconv.Itoa(int(math.Ceil(d.Seconds()))))
			response.TooManyRequests(c, response.RetryLaterMessage)
			return
		}

		c.Next()
	}
}
