package repository

import (
	"context"

	"taskmate/internal/category"
)

// Repository defines all data access methods for the Category entity.
type Repository interface {
	CreateCategory(ctx context.Context, opt CreateCategoryOptions) (category.Category, error)
	GetOneCategory(ctx context.Context, opt GetOneCategoryOptions) (category.Category, error)
	ListCategories(ctx context.Context, userID string) ([]category.Category, error)
	ListCategoriesByIDs(ctx context.Context, ids []string) ([]category.Category, error)
	UpdateCategory(ctx context.Context, opt UpdateCategoryOptions) (category.Category, error)
	DeleteCategory(ctx context.Context, id, userID string) error
}
