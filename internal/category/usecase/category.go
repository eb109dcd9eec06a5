package usecase

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"

	"taskmate/internal/category"
	repo "taskmate/internal/category/repository"
	"taskmate/internal/model"
)

const maxNameLength = 30

var hexColorRe = regexp.MustCompile(`^#([A-Fa-f0-9]{6}|[A-Fa-f0-9]{3})$`)

func validate(name, icon, color string) error {
	if name == "" || utf8.RuneCountInString(name) > maxNameLength {
		return category.ErrInvalidName
	}
	if _, ok := category.AllowedIcons[icon]; !ok {
		return category.ErrInvalidIcon
	}
	if !hexColorRe.MatchString(color) {
		return category.ErrInvalidColor
	}
	return nil
}

// Create validates the input, checks name uniqueness and persists the category.
// A storage-level unique conflict also maps to ErrDuplicateName so two racing
// creates for the same name resolve deterministically.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input category.CreateCategoryInput) (category.Category, error) {
	input.Name = strings.TrimSpace(input.Name)

	if err := validate(input.Name, input.Icon, input.Color); err != nil {
		return category.Category{}, err
	}

	existing, err := uc.repo.GetOneCategory(ctx, repo.GetOneCategoryOptions{Name: input.Name, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "category.uc.Create GetOneCategory: %v", err)
		return category.Category{}, err
	}
	if existing.ID != "" {
		return category.Category{}, category.ErrDuplicateName
	}

	created, err := uc.repo.CreateCategory(ctx, repo.CreateCategoryOptions{
		UserID: sc.UserID,
		Name:   input.Name,
		Icon:   input.Icon,
		Color:  input.Color,
	})
	if err != nil {
		if errors.Is(err, repo.ErrUniqueViolation) {
			return category.Category{}, category.ErrDuplicateName
		}
		uc.l.Errorf(ctx, "category.uc.Create CreateCategory: %v", err)
		return category.Category{}, err
	}

	uc.listCache.Remove(sc.UserID)
	return created, nil
}

// List returns all categories of the caller, served from the per-user cache
// when possible.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope) ([]category.Category, error) {
	if cached, ok := uc.listCache.Get(sc.UserID); ok {
		return cached, nil
	}

	categories, err := uc.repo.ListCategories(ctx, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "category.uc.List: %v", err)
		return nil, err
	}

	uc.listCache.Add(sc.UserID, categories)
	return categories, nil
}

// Detail returns a single category owned by the caller.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id string) (category.Category, error) {
	found, err := uc.repo.GetOneCategory(ctx, repo.GetOneCategoryOptions{ID: id, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "category.uc.Detail: %v", err)
		return category.Category{}, err
	}
	if found.ID == "" {
		return category.Category{}, category.ErrNotFound
	}
	return found, nil
}

// Update replaces name/icon/color of an existing category.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input category.UpdateCategoryInput) (category.Category, error) {
	input.Name = strings.TrimSpace(input.Name)

	if err := validate(input.Name, input.Icon, input.Color); err != nil {
		return category.Category{}, err
	}

	updated, err := uc.repo.UpdateCategory(ctx, repo.UpdateCategoryOptions{
		ID:     input.ID,
		UserID: sc.UserID,
		Name:   input.Name,
		Icon:   input.Icon,
		Color:  input.Color,
	})
	if err != nil {
		uc.l.Errorf(ctx, "category.uc.Update: %v", err)
		return category.Category{}, err
	}
	if updated.ID == "" {
		return category.Category{}, category.ErrNotFound
	}

	uc.listCache.Remove(sc.UserID)
	return updated, nil
}

// Delete removes a category owned by the caller.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	found, err := uc.repo.GetOneCategory(ctx, repo.GetOneCategoryOptions{ID: id, UserID: sc.UserID})
	if err != nil {
		return err
	}
	if found.ID == "" {
		return category.ErrNotFound
	}

	if err := uc.repo.DeleteCategory(ctx, id, sc.UserID); err != nil {
		uc.l.Errorf(ctx, "category.uc.Delete: %v", err)
		return err
	}

	uc.listCache.Remove(sc.UserID)
	return nil
}

// FindByExactName returns the zero-value Category when no match exists.
func (uc *implUseCase) FindByExactName(ctx context.Context, sc model.Scope, name string) (category.Category, error) {
	return uc.repo.GetOneCategory(ctx, repo.GetOneCategoryOptions{Name: name, UserID: sc.UserID})
}

// GetByIDs fetches categories by id and verifies every one belongs to the caller.
func (uc *implUseCase) GetByIDs(ctx context.Context, sc model.Scope, ids []string) ([]category.Category, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	categories, err := uc.repo.ListCategoriesByIDs(ctx, ids)
	if err != nil {
		uc.l.Errorf(ctx, "category.uc.GetByIDs: %v", err)
		return nil, err
	}

	for _, c := range categories {
		if c.UserID != sc.UserID {
			return nil, category.ErrNotOwned
		}
	}
	return categories, nil
}
