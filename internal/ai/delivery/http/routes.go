package http

import (
	"github.com/gin-gonic/gin"

	"taskmate/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	aiGroup := rg.Group("/ai", mw.Auth())
	{
		aiGroup.POST("/parse-task", h.ParseTask)
		aiGroup.POST("/chat", h.Chat)
		aiGroup.PATCH("/categorize/:id", h.Categorize)
		aiGroup.POST("/summarize", h.Summarize)
		aiGroup.GET("/summarize/daily", h.SummarizeDaily)
		aiGroup.GET("/summarize/all", h.SummarizeAll)
		aiGroup.GET("/health-check", h.HealthCheck)
	}
}
