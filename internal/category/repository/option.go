package repository

// CreateCategoryOptions holds parameters for inserting a new Category.
type CreateCategoryOptions struct {
	UserID string
	Name   string
	Icon   string
	Color  string
}

// GetOneCategoryOptions holds filter parameters for fetching a single Category.
// All non-empty fields are applied as AND conditions.
type GetOneCategoryOptions struct {
	ID     string
	Name   string
	UserID string
}

// UpdateCategoryOptions holds parameters for updating an existing Category.
type UpdateCategoryOptions struct {
	ID     string
	UserID string
	Name   string
	Icon   string
	Color  string
}
