package usecase

import (
	"context"

	"github.com/google/uuid"

	"taskmate/internal/category"
	repo "taskmate/internal/category/repository"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// In-memory repository mock
type mockRepository struct {
	categories map[string]category.Category
	failCreate error
}

func newMockRepository() *mockRepository {
	return &mockRepository{categories: make(map[string]category.Category)}
}

func (m *mockRepository) CreateCategory(ctx context.Context, opt repo.CreateCategoryOptions) (category.Category, error) {
	if m.failCreate != nil {
		return category.Category{}, m.failCreate
	}
	for _, c := range m.categories {
		if c.UserID == opt.UserID && c.Name == opt.Name {
			return category.Category{}, repo.ErrUniqueViolation
		}
	}
	c := category.Category{
		ID:     uuid.NewString(),
		UserID: opt.UserID,
		Name:   opt.Name,
		Icon:   opt.Icon,
		Color:  opt.Color,
	}
	m.categories[c.ID] = c
	return c, nil
}

func (m *mockRepository) GetOneCategory(ctx context.Context, opt repo.GetOneCategoryOptions) (category.Category, error) {
	for _, c := range m.categories {
		if opt.ID != "" && c.ID != opt.ID {
			continue
		}
		if opt.Name != "" && c.Name != opt.Name {
			continue
		}
		if opt.UserID != "" && c.UserID != opt.UserID {
			continue
		}
		return c, nil
	}
	return category.Category{}, nil
}

func (m *mockRepository) ListCategories(ctx context.Context, userID string) ([]category.Category, error) {
	var out []category.Category
	for _, c := range m.categories {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *mockRepository) ListCategoriesByIDs(ctx context.Context, ids []string) ([]category.Category, error) {
	var out []category.Category
	for _, id := range ids {
		if c, ok := m.categories[id]; ok {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *mockRepository) UpdateCategory(ctx context.Context, opt repo.UpdateCategoryOptions) (category.Category, error) {
	c, ok := m.categories[opt.ID]
	if !ok || c.UserID != opt.UserID {
		return category.Category{}, nil
	}
	c.Name, c.Icon, c.Color = opt.Name, opt.Icon, opt.Color
	m.categories[opt.ID] = c
	return c, nil
}

func (m *mockRepository) DeleteCategory(ctx context.Context, id, userID string) error {
	delete(m.categories, id)
	return nil
}
