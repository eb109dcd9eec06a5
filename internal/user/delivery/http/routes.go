package http

import (
	"github.com/gin-gonic/gin"

	"taskmate/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	auth := rg.Group("/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
		auth.POST("/logout", h.Logout)
		auth.POST("/forgot-password", h.ForgotPassword)
		auth.POST("/reset-password", h.ResetPassword)
	}

	users := rg.Group("/users", mw.Auth())
	{
		users.GET("/me", h.Me)
	}

	admin := rg.Group("/admin", mw.Auth(), mw.RequireAdmin())
	{
		admin.GET("/users", h.ListUsers)
		admin.PATCH("/users/:id/enabled", h.SetEnabled)
	}
}
