package middleware

import (
	"github.com/gin-gonic/gin"

	"taskmate/internal/model"
	"taskmate/pkg/response"
)

const scopeKey = "taskmate.scope"

// Auth verifies the JWT cookie and injects the caller scope into the context.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(m.authCfg.CookieName)
		if err != nil || token == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		payload, err := m.jwtManager.Verify(token)
		if err != nil {
			m.l.Warnf(c.Request.Context(), "middleware.Auth: invalid token: %v", err)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set(scopeKey, model.Scope{
			UserID:   payload.UserID,
			Username: payload.Username,
			Role:     payload.Role,
		})
		c.Next()
	}
}

// RequireAdmin rejects non-admin callers. Must run after Auth.
func (m Middleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		sc, ok := GetScope(c)
		if !ok || !sc.IsAdmin() {
			response.Forbidden(c)
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetScope returns the caller scope set by Auth.
func GetScope(c *gin.Context) (model.Scope, bool) {
	v, ok := c.Get(scopeKey)
	if !ok {
		return model.Scope{}, false
	}
	sc, ok := v.(model.Scope)
	return sc, ok
}
