package http

import (
	"time"

	"taskmate/internal/user"
)

// --- Request DTOs ---

type registerReq struct {
	Username string `json:"username" binding:"required,min=1,max=50"`
	Email    string `json:"email"    binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (r registerReq) toInput() user.RegisterInput {
	return user.RegisterInput{
		Username: r.Username,
		Email:    r.Email,
		Password: r.Password,
	}
}

type loginReq struct {
	Email    string `json:"email"    binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (r loginReq) toInput() user.LoginInput {
	return user.LoginInput{
		Email:    r.Email,
		Password: r.Password,
	}
}

type forgotPasswordReq struct {
	Email string `json:"email" binding:"required,email"`
}

type resetPasswordReq struct {
	Token       string `json:"token"        binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

func (r resetPasswordReq) toInput() user.ResetPasswordInput {
	return user.ResetPasswordInput{
		Token:       r.Token,
		NewPassword: r.NewPassword,
	}
}

type setEnabledReq struct {
	Enabled *bool `json:"enabled" binding:"required"`
}

// --- Response DTOs ---

type userResp struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Enabled   bool      `json:"enabled"`
	CreatedAt time.Time `json:"created_at"`
}

func newUserResp(u user.User) userResp {
	return userResp{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Role:      string(u.Role),
		Enabled:   u.Enabled,
		CreatedAt: u.CreatedAt,
	}
}

type listResp struct {
	Users []userResp `json:"users"`
}

func newListResp(users []user.User) listResp {
	out := make([]userResp, len(users))
	for i, u := range users {
		out[i] = newUserResp(u)
	}
	return listResp{Users: out}
}
