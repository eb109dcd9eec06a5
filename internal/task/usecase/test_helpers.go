package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"taskmate/internal/category"
	"taskmate/internal/model"
	"taskmate/internal/task"
	repo "taskmate/internal/task/repository"
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
	tasks      map[string]task.Task
	statusSets int
}

func newMockRepository() *mockRepository {
	return &mockRepository{tasks: make(map[string]task.Task)}
}

func (m *mockRepository) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (task.Task, error) {
	t := task.Task{
		ID:          uuid.NewString(),
		UserID:      opt.UserID,
		Title:       opt.Title,
		Content:     opt.Content,
		DueDate:     opt.DueDate,
		Status:      opt.Status,
		Priority:    opt.Priority,
		IsFavorite:  opt.IsFavorite,
		CategoryIDs: opt.CategoryIDs,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	m.tasks[t.ID] = t
	return t, nil
}

func (m *mockRepository) GetOneTask(ctx context.Context, opt repo.GetOneTaskOptions) (task.Task, error) {
	for _, t := range m.tasks {
		if opt.ID != "" && t.ID != opt.ID {
			continue
		}
		if opt.UserID != "" && t.UserID != opt.UserID {
			continue
		}
		if opt.ExactTitle != "" && strings.TrimSpace(t.Title) != opt.ExactTitle {
			continue
		}
		return t, nil
	}
	return task.Task{}, nil
}

func (m *mockRepository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]task.Task, int64, error) {
	var out []task.Task
	for _, t := range m.tasks {
		if t.UserID != opt.UserID {
			continue
		}
		if opt.Status != nil && t.Status != *opt.Status {
			continue
		}
		if opt.Priority != nil && t.Priority != *opt.Priority {
			continue
		}
		if opt.Favorite != nil && t.IsFavorite != *opt.Favorite {
			continue
		}
		if opt.DueFrom != nil && (t.DueDate == nil || t.DueDate.Before(*opt.DueFrom)) {
			continue
		}
		if opt.DueTo != nil && (t.DueDate == nil || !t.DueDate.Before(*opt.DueTo)) {
			continue
		}
		out = append(out, t)
	}
	return out, int64(len(out)), nil
}

func (m *mockRepository) UpdateTask(ctx context.Context, opt repo.UpdateTaskOptions) (task.Task, error) {
	t, ok := m.tasks[opt.ID]
	if !ok || t.UserID != opt.UserID {
		return task.Task{}, nil
	}
	t.Title = opt.Title
	t.Content = opt.Content
	t.DueDate = opt.DueDate
	t.Status = opt.Status
	t.Priority = opt.Priority
	t.IsFavorite = opt.IsFavorite
	t.CategoryIDs = opt.CategoryIDs
	t.UpdatedAt = time.Now()
	m.tasks[opt.ID] = t
	return t, nil
}

func (m *mockRepository) DeleteTask(ctx context.Context, opt repo.DeleteTaskOptions) error {
	delete(m.tasks, opt.ID)
	return nil
}

func (m *mockRepository) ReplaceTaskCategories(ctx context.Context, opt repo.ReplaceTaskCategoriesOptions) error {
	t, ok := m.tasks[opt.TaskID]
	if !ok {
		return nil
	}
	t.CategoryIDs = opt.CategoryIDs
	m.tasks[opt.TaskID] = t
	return nil
}

func (m *mockRepository) UpdateTaskStatuses(ctx context.Context, opt repo.UpdateTaskStatusesOptions) error {
	m.statusSets++
	for _, id := range opt.IDs {
		if t, ok := m.tasks[id]; ok {
			t.Status = opt.Status
			m.tasks[id] = t
		}
	}
	return nil
}

// Category use case mock, only GetByIDs matters for task tests.
type mockCategoryUC struct {
	owned map[string]category.Category
}

func newMockCategoryUC() *mockCategoryUC {
	return &mockCategoryUC{owned: make(map[string]category.Category)}
}

func (m *mockCategoryUC) Create(ctx context.Context, sc model.Scope, input category.CreateCategoryInput) (category.Category, error) {
	c := category.Category{ID: uuid.NewString(), UserID: sc.UserID, Name: input.Name, Icon: input.Icon, Color: input.Color}
	m.owned[c.ID] = c
	return c, nil
}

func (m *mockCategoryUC) List(ctx context.Context, sc model.Scope) ([]category.Category, error) {
	var out []category.Category
	for _, c := range m.owned {
		if c.UserID == sc.UserID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *mockCategoryUC) Detail(ctx context.Context, sc model.Scope, id string) (category.Category, error) {
	return m.owned[id], nil
}

func (m *mockCategoryUC) Update(ctx context.Context, sc model.Scope, input category.UpdateCategoryInput) (category.Category, error) {
	return m.owned[input.ID], nil
}

func (m *mockCategoryUC) Delete(ctx context.Context, sc model.Scope, id string) error {
	delete(m.owned, id)
	return nil
}

func (m *mockCategoryUC) FindByExactName(ctx context.Context, sc model.Scope, name string) (category.Category, error) {
	for _, c := range m.owned {
		if c.UserID == sc.UserID && c.Name == name {
			return c, nil
		}
	}
	return category.Category{}, nil
}

func (m *mockCategoryUC) GetByIDs(ctx context.Context, sc model.Scope, ids []string) ([]category.Category, error) {
	out := make([]category.Category, 0, len(ids))
	for _, id := range ids {
		c, ok := m.owned[id]
		if !ok || c.UserID != sc.UserID {
			return nil, category.ErrNotOwned
		}
		out = append(out, c)
	}
	return out, nil
}

func createOpts(title string, due *time.Time, status task.Status) repo.CreateTaskOptions {
	return repo.CreateTaskOptions{
		UserID:   "user-1",
		Title:    title,
		DueDate:  due,
		Status:   status,
		Priority: task.PriorityMedium,
	}
}

func taskCategoryInput(name string) category.CreateCategoryInput {
	return category.CreateCategoryInput{Name: name, Icon: "briefcase", Color: "#FF5733"}
}

func newTestUseCase(repo *mockRepository, catUC *mockCategoryUC, now time.Time) *implUseCase {
	return &implUseCase{
		l:          &mockLogger{},
		repo:       repo,
		categoryUC: catUC,
		now:        func() time.Time { return now },
	}
}
