package http

import (
	"github.com/gin-gonic/gin"

	"taskmate/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	tasks := rg.Group("/tasks", mw.Auth())
	{
		tasks.POST("", h.Create)
		tasks.GET("", h.List)
		tasks.GET("/date", h.ByDate)
		tasks.GET("/:id", h.Detail)
		tasks.PUT("/:id", h.Update)
		tasks.DELETE("/:id", h.Delete)
		tasks.PATCH("/:id/status", h.ChangeStatus)
		tasks.PATCH("/:id/priority", h.ChangePriority)
		tasks.PATCH("/:id/favorite", h.ToggleFavorite)
		tasks.PUT("/:id/categories", h.ReplaceCategories)
	}
}
