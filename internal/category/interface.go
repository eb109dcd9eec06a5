package category

import (
	"context"

	"taskmate/internal/model"
)

// UseCase defines the business logic interface for the category domain.
type UseCase interface {
	Create(ctx context.Context, sc model.Scope, input CreateCategoryInput) (Category, error)
	List(ctx context.Context, sc model.Scope) ([]Category, error)
	Detail(ctx context.Context, sc model.Scope, id string) (Category, error)
	Update(ctx context.Context, sc model.Scope, input UpdateCategoryInput) (Category, error)
	Delete(ctx context.Context, sc model.Scope, id string) error

	// FindByExactName returns the zero-value Category when no match exists.
	FindByExactName(ctx context.Context, sc model.Scope, name string) (Category, error)

	// GetByIDs fetches categories and verifies they all belong to the caller.
	GetByIDs(ctx context.Context, sc model.Scope, ids []string) ([]Category, error)
}
