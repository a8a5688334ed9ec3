package http

import (
	"github.com/gin-gonic/gin"

	"smart-todo/internal/middleware"
)

// RegisterRoutes maps the task CRUD surface. Every route requires a bearer token.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	todos := rg.Group("/todos", mw.Auth())
	{
		todos.POST("", h.Create)
		todos.GET("", h.List)
		todos.GET("/:id", h.Detail)
		todos.PATCH("/:id", h.Update)
		todos.PATCH("/:id/toggle", h.Toggle)
		todos.DELETE("/:id", h.Delete)
	}
}
