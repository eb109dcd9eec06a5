package repository

import (
	"context"

	"taskmate/internal/user"
)

// Repository defines all data access methods for the User entity and its
// password reset tokens.
type Repository interface {
	CreateUser(ctx context.Context, opt CreateUserOptions) (user.User, error)
	GetOneUser(ctx context.Context, opt GetOneUserOptions) (user.User, error)
	ListUsers(ctx context.Context) ([]user.User, error)
	UpdateUser(ctx context.Context, opt UpdateUserOptions) (user.User, error)

	CreateResetToken(ctx context.Context, opt CreateResetTokenOptions) error
	// ConsumeResetToken atomically fetches and deletes a token, returning the
	// owning user id. Expired or unknown tokens return the zero value.
	ConsumeResetToken(ctx context.Context, token string) (ResetToken, error)
}
