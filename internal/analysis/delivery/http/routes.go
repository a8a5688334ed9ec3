package http

import (
	"github.com/gin-gonic/gin"

	"smart-todo/internal/middleware"
)

// RegisterRoutes maps the analysis endpoints. The two that may call the
// generative service are rate limited per owner.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	a := rg.Group("/analysis", mw.Auth())
	{
		a.POST("", mw.RateLimit(), h.Analyze)
		a.GET("", mw.RateLimit(), h.AnalyzeStored)
		a.GET("/stats", h.Stats)
	}
}
