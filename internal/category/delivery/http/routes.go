package http

import (
	"github.com/gin-gonic/gin"

	"taskmate/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	categories := rg.Group("/categories", mw.Auth())
	{
		categories.POST("", h.Create)
		categories.GET("", h.List)
		categories.GET("/:id", h.Detail)
		categories.PUT("/:id", h.Update)
		categories.DELETE("/:id", h.Delete)
	}
}
