package postgre

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"taskmate/internal/category"
	repo "taskmate/internal/category/repository"
)

const categoryColumns = `id, user_id, name, icon, color`

// CreateCategory inserts a new Category row and returns the created entity.
// A (user_id, name) unique violation maps to ErrUniqueViolation so callers
// can re-resolve by lookup.
func (r *implRepository) CreateCategory(ctx context.Context, opt repo.CreateCategoryOptions) (category.Category, error) {
	const query = `
		INSERT INTO categories (id, user_id, name, icon, color)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + categoryColumns

	var c category.Category
	err := r.db.QueryRowContext(ctx, query, uuid.NewString(), opt.UserID, opt.Name, opt.Icon, opt.Color).Scan(
		&c.ID, &c.UserID, &c.Name, &c.Icon, &c.Color,
	)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return category.Category{}, repo.ErrUniqueViolation
		}
		r.l.Errorf(ctx, "category/repository/postgre.CreateCategory: %v", err)
		return category.Category{}, repo.ErrFailedToInsert
	}
	return c, nil
}

// GetOneCategory retrieves a single Category by the provided filters (AND condition).
// Returns zero-value Category (ID == "") when not found — do NOT return error for not-found.
func (r *implRepository) GetOneCategory(ctx context.Context, opt repo.GetOneCategoryOptions) (category.Category, error) {
	mods := make([]string, 0, 3)
	args := make([]any, 0, 3)

	if opt.ID != "" {
		args = append(args, opt.ID)
		mods = append(mods, fmt.Sprintf("id = $%d", len(args)))
	}
	if opt.Name != "" {
		args = append(args, opt.Name)
		mods = append(mods, fmt.Sprintf("name = $%d", len(args)))
	}
	if opt.UserID != "" {
		args = append(args, opt.UserID)
		mods = append(mods, fmt.Sprintf("user_id = $%d", len(args)))
	}

	query := fmt.Sprintf("SELECT %s FROM categories WHERE %s LIMIT 1",
		categoryColumns, strings.Join(mods, " AND "))

	var c category.Category
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&c.ID, &c.UserID, &c.Name, &c.Icon, &c.Color)
	if err == sql.ErrNoRows {
		return category.Category{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "category/repository/postgre.GetOneCategory: %v", err)
		return category.Category{}, repo.ErrFailedToGet
	}
	return c, nil
}

// ListCategories returns all categories of one user ordered by name.
func (r *implRepository) ListCategories(ctx context.Context, userID string) ([]category.Category, error) {
	query := fmt.Sprintf("SELECT %s FROM categories WHERE user_id = $1 ORDER BY name", categoryColumns)

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		r.l.Errorf(ctx, "category/repository/postgre.ListCategories: %v", err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	return scanCategories(rows)
}

// ListCategoriesByIDs fetches categories by id, regardless of owner.
// Ownership checks belong to the use case.
func (r *implRepository) ListCategoriesByIDs(ctx context.Context, ids []string) ([]category.Category, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query := fmt.Sprintf("SELECT %s FROM categories WHERE id = ANY($1)", categoryColumns)

	rows, err := r.db.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		r.l.Errorf(ctx, "category/repository/postgre.ListCategoriesByIDs: %v", err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	return scanCategories(rows)
}

// UpdateCategory updates an existing Category owned by the user.
func (r *implRepository) UpdateCategory(ctx context.Context, opt repo.UpdateCategoryOptions) (category.Category, error) {
	const query = `
		UPDATE categories SET name = $1, icon = $2, color = $3
		WHERE id = $4 AND user_id = $5
		RETURNING ` + categoryColumns

	var c category.Category
	err := r.db.QueryRowContext(ctx, query, opt.Name, opt.Icon, opt.Color, opt.ID, opt.UserID).Scan(
		&c.ID, &c.UserID, &c.Name, &c.Icon, &c.Color,
	)
	if err == sql.ErrNoRows {
		return category.Category{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "category/repository/postgre.UpdateCategory: %v", err)
		return category.Category{}, repo.ErrFailedToUpdate
	}
	return c, nil
}

// DeleteCategory removes a Category owned by the user.
func (r *implRepository) DeleteCategory(ctx context.Context, id, userID string) error {
	const query = `DELETE FROM categories WHERE id = $1 AND user_id = $2`

	if _, err := r.db.ExecContext(ctx, query, id, userID); err != nil {
		r.l.Errorf(ctx, "category/repository/postgre.DeleteCategory: %v", err)
		return repo.ErrFailedToDelete
	}
	return nil
}

func scanCategories(rows *sql.Rows) ([]category.Category, error) {
	var out []category.Category
	for rows.Next() {
		var c category.Category
		if err := rows.Scan(&c.ID, &c.UserID, &c.Name, &c.Icon, &c.Color); err != nil {
			return nil, repo.ErrFailedToList
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, repo.ErrFailedToList
	}
	return out, nil
}
