package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskmate/internal/middleware"
	"taskmate/pkg/response"
)

// Register godoc
// @Summary     Register a new account
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body registerReq true "Account data"
// @Success     201 {object} response.Resp
// @Failure     409 {object} response.Resp "Conflict - email or username taken"
// @Router      /api/v1/auth/register [POST]
func (h *handler) Register(c *gin.Context) {
	ctx := c.Request.Context()

	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	created, err := h.uc.Register(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "user.uc.Register: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, newUserResp(created))
}

// Login godoc
// @Summary     Log in with email and password
// @Description Sets the session cookie on success.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body loginReq true "Credentials"
// @Success     200 {object} response.Resp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/auth/login [POST]
func (h *handler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	found, token, err := h.uc.Login(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "user.uc.Login: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	h.setSessionCookie(c, token)
	response.OK(c, newUserResp(found))
}

// Logout godoc
// @Summary     Log out
// @Description Clears the session cookie.
// @Tags        Auth
// @Produce     json
// @Success     200 {object} response.Resp
// @Router      /api/v1/auth/logout [POST]
func (h *handler) Logout(c *gin.Context) {
	h.clearSessionCookie(c)
	response.OK(c, nil)
}

// ForgotPassword godoc
// @Summary     Request a password reset code
// @Description Always reports success so account existence is not leaked.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body forgotPasswordReq true "Account email"
// @Success     200 {object} response.Resp
// @Router      /api/v1/auth/forgot-password [POST]
func (h *handler) ForgotPassword(c *gin.Context) {
	ctx := c.Request.Context()

	var req forgotPasswordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.ForgotPassword(ctx, req.Email); err != nil {
		h.l.Errorf(ctx, "user.uc.ForgotPassword: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// ResetPassword godoc
// @Summary     Reset the password with a mailed code
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body resetPasswordReq true "Reset code and new password"
// @Success     200 {object} response.Resp
// @Failure     400 {object} response.Resp "Invalid or expired code"
// @Router      /api/v1/auth/reset-password [POST]
func (h *handler) ResetPassword(c *gin.Context) {
	ctx := c.Request.Context()

	var req resetPasswordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.ResetPassword(ctx, req.toInput()); err != nil {
		h.l.Warnf(ctx, "user.uc.ResetPassword: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// Me godoc
// @Summary     Get the authenticated user
// @Tags        User
// @Produce     json
// @Success     200 {object} response.Resp
// @Router      /api/v1/users/me [GET]
func (h *handler) Me(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := middleware.GetScope(c)

	found, err := h.uc.Me(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "user.uc.Me: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newUserResp(found))
}

// ListUsers godoc
// @Summary     List all users (admin)
// @Tags        Admin
// @Produce     json
// @Success     200 {object} response.Resp
// @Failure     403 {object} response.Resp "Forbidden"
// @Router      /api/v1/admin/users [GET]
func (h *handler) ListUsers(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := middleware.GetScope(c)

	users, err := h.uc.ListUsers(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "user.uc.ListUsers: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newListResp(users))
}

// SetEnabled godoc
// @Summary     Enable or disable a user account (admin)
// @Tags        Admin
// @Accept      json
// @Produce     json
// @Param       id   path string        true "User ID"
// @Param       body body setEnabledReq true "Enabled flag"
// @Success     200 {object} response.Resp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/admin/users/{id}/enabled [PATCH]
func (h *handler) SetEnabled(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := middleware.GetScope(c)

	var req setEnabledReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	updated, err := h.uc.SetEnabled(ctx, sc, c.Param("id"), *req.Enabled)
	if err != nil {
		h.l.Errorf(ctx, "user.uc.SetEnabled: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newUserResp(updated))
}

func (h *handler) setSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(
		h.authCfg.CookieName,
		token,
		int(h.authCfg.TokenTTL.Seconds()),
		"/",
		h.authCfg.CookieDomain,
		h.authCfg.CookieSecure,
		true,
	)
}

func (h *handler) clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(
		h.authCfg.CookieName,
		"",
		-1,
		"/",
		h.authCfg.CookieDomain,
		h.authCfg.CookieSecure,
		true,
	)
}
