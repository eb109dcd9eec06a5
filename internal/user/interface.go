package user

import (
	"context"

	"taskmate/internal/model"
)

// UseCase defines the business logic interface for accounts and authentication.
type UseCase interface {
	Register(ctx context.Context, input RegisterInput) (User, error)
	// Login returns the user and a signed session token.
	Login(ctx context.Context, input LoginInput) (User, string, error)
	Me(ctx context.Context, sc model.Scope) (User, error)

	// ForgotPassword sends a reset token by mail. It reports success even for
	// unknown addresses so the endpoint does not leak account existence.
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, input ResetPasswordInput) error

	// Admin operations.
	ListUsers(ctx context.Context, sc model.Scope) ([]User, error)
	SetEnabled(ctx context.Context, sc model.Scope, id string, enabled bool) (User, error)

	// EnsureAdmin creates the bootstrap admin account if it does not exist.
	EnsureAdmin(ctx context.Context, email, username, password string) error
}
