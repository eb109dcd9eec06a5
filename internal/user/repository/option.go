package repository

import (
	"time"

	"taskmate/internal/user"
)

// CreateUserOptions holds parameters for inserting a new User.
type CreateUserOptions struct {
	Username string
	Email    string
	Password string // bcrypt hash
	Role     user.Role
}

// GetOneUserOptions holds filter parameters for fetching a single User.
// All non-empty fields are applied as AND conditions.
type GetOneUserOptions struct {
	ID       string
	Email    string
	Username string
}

// UpdateUserOptions holds parameters for updating an existing User. Only
// non-zero fields are written.
type UpdateUserOptions struct {
	ID       string
	Password string // new bcrypt hash, empty to keep
	Enabled  *bool
}

// CreateResetTokenOptions holds parameters for storing a password reset token.
type CreateResetTokenOptions struct {
	Token     string
	UserID    string
	ExpiresAt time.Time
}

// ResetToken is a stored password reset token.
type ResetToken struct {
	Token     string
	UserID    string
	ExpiresAt time.Time
}
