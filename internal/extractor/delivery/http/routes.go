package http

import (
	"github.com/gin-gonic/gin"

	"smart-todo/internal/middleware"
)

// RegisterRoutes maps the extractor endpoint. It is authenticated and rate
// limited per owner.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("/extract", mw.Auth(), mw.RateLimit(), h.Extract)
}
