package user

import "time"

// Role controls access to the admin surface.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// User is an account holder.
type User struct {
	ID        string
	Username  string
	Email     string
	Password  string // bcrypt hash
	Role      Role
	Enabled   bool
	CreatedAt time.Time
}

type RegisterInput struct {
	Username string
	Email    string
	Password string
}

type LoginInput struct {
	Email    string
	Password string
}

type ResetPasswordInput struct {
	Token       string
	NewPassword string
}
