package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"taskmate/internal/category"
	"taskmate/internal/model"
	"taskmate/internal/task"
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

// Scripted gateway mock. respond inspects the rendered prompt and returns
// the canned model output for it.
type mockGateway struct {
	respond func(prompt string) (string, error)
	calls   []string
}

func (m *mockGateway) Complete(ctx context.Context, prompt string) (string, error) {
	m.calls = append(m.calls, prompt)
	if m.respond == nil {
		return "", errors.New("gateway not scripted")
	}
	return m.respond(prompt)
}

// intentThen scripts the gateway to answer the intent prompt with label and
// every other prompt with the given function.
func intentThen(label string, rest func(prompt string) (string, error)) func(string) (string, error) {
	return func(prompt string) (string, error) {
		if strings.Contains(prompt, "detects user intent") {
			return label, nil
		}
		return rest(prompt)
	}
}

// In-memory task use case mock.
type mockTaskUC struct {
	tasks      map[string]task.Task
	createErr  error
	detailErrs map[string]error
}

func newMockTaskUC() *mockTaskUC {
	return &mockTaskUC{
		tasks:      make(map[string]task.Task),
		detailErrs: make(map[string]error),
	}
}

func (m *mockTaskUC) add(t task.Task) task.Task {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if t.UserID == "" {
		t.UserID = "user-1"
	}
	m.tasks[t.ID] = t
	return t
}

func (m *mockTaskUC) Create(ctx context.Context, sc model.Scope, input task.CreateTaskInput) (task.Task, error) {
	if m.createErr != nil {
		return task.Task{}, m.createErr
	}
	return m.add(task.Task{
		UserID:      sc.UserID,
		Title:       task.NormalizeText(input.Title),
		Content:     task.NormalizeText(input.Content),
		DueDate:     input.DueDate,
		Status:      input.Status,
		Priority:    input.Priority,
		IsFavorite:  input.IsFavorite,
		CategoryIDs: input.CategoryIDs,
	}), nil
}

func (m *mockTaskUC) Detail(ctx context.Context, sc model.Scope, id string) (task.Task, error) {
	if err, ok := m.detailErrs[id]; ok {
		return task.Task{}, err
	}
	t, ok := m.tasks[id]
	if !ok {
		return task.Task{}, task.ErrNotFound
	}
	return t, nil
}

func (m *mockTaskUC) List(ctx context.Context, sc model.Scope, input task.ListTasksInput) (task.ListTasksOutput, error) {
	var out []task.Task
	for _, t := range m.tasks {
		if t.UserID == sc.UserID {
			out = append(out, t)
		}
	}
	return task.ListTasksOutput{Tasks: out, Total: int64(len(out))}, nil
}

func (m *mockTaskUC) Update(ctx context.Context, sc model.Scope, input task.UpdateTaskInput) (task.Task, error) {
	return m.tasks[input.ID], nil
}

func (m *mockTaskUC) Delete(ctx context.Context, sc model.Scope, id string) error {
	delete(m.tasks, id)
	return nil
}

func (m *mockTaskUC) ChangeStatus(ctx context.Context, sc model.Scope, id string, st task.Status) (task.Task, error) {
	t := m.tasks[id]
	t.Status = st
	m.tasks[id] = t
	return t, nil
}

func (m *mockTaskUC) ChangePriority(ctx context.Context, sc model.Scope, id string, p task.Priority) (task.Task, error) {
	t := m.tasks[id]
	t.Priority = p
	m.tasks[id] = t
	return t, nil
}

func (m *mockTaskUC) ToggleFavorite(ctx context.Context, sc model.Scope, id string) (task.Task, error) {
	t := m.tasks[id]
	t.IsFavorite = !t.IsFavorite
	m.tasks[id] = t
	return t, nil
}

func (m *mockTaskUC) GetByDate(ctx context.Context, sc model.Scope, date time.Time) ([]task.Task, error) {
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	var out []task.Task
	for _, t := range m.tasks {
		if t.UserID != sc.UserID || t.DueDate == nil {
			continue
		}
		if !t.DueDate.Before(dayStart) && t.DueDate.Before(dayEnd) {
			out = append(out, t)
		}
	}
	return out, nil
}

func (m *mockTaskUC) GetAll(ctx context.Context, sc model.Scope) ([]task.Task, error) {
	out, _ := m.List(ctx, sc, task.ListTasksInput{})
	return out.Tasks, nil
}

func (m *mockTaskUC) FindByExactTitle(ctx context.Context, sc model.Scope, title string) (task.Task, error) {
	for _, t := range m.tasks {
		if t.UserID == sc.UserID && strings.TrimSpace(t.Title) == strings.TrimSpace(title) {
			return t, nil
		}
	}
	return task.Task{}, nil
}

func (m *mockTaskUC) ReplaceCategories(ctx context.Context, sc model.Scope, id string, categoryIDs []string) (task.Task, error) {
	t := m.tasks[id]
	t.CategoryIDs = categoryIDs
	m.tasks[id] = t
	return t, nil
}

func (m *mockTaskUC) AddCategories(ctx context.Context, sc model.Scope, id string, categoryIDs []string) (task.Task, error) {
	t, ok := m.tasks[id]
	if !ok {
		return task.Task{}, task.ErrNotFound
	}
	seen := make(map[string]bool, len(t.CategoryIDs))
	for _, cid := range t.CategoryIDs {
		seen[cid] = true
	}
	for _, cid := range categoryIDs {
		if !seen[cid] {
			t.CategoryIDs = append(t.CategoryIDs, cid)
			seen[cid] = true
		}
	}
	m.tasks[id] = t
	return t, nil
}

// In-memory category use case mock counting creations.
type mockCategoryUC struct {
	categories map[string]category.Category
	created    int
	createErr  error
}

func newMockCategoryUC() *mockCategoryUC {
	return &mockCategoryUC{categories: make(map[string]category.Category)}
}

func (m *mockCategoryUC) Create(ctx context.Context, sc model.Scope, input category.CreateCategoryInput) (category.Category, error) {
	if m.createErr != nil {
		return category.Category{}, m.createErr
	}
	for _, c := range m.categories {
		if c.UserID == sc.UserID && c.Name == input.Name {
			return category.Category{}, category.ErrDuplicateName
		}
	}
	if _, ok := category.AllowedIcons[input.Icon]; !ok {
		return category.Category{}, category.ErrInvalidIcon
	}
	c := category.Category{
		ID:     uuid.NewString(),
		UserID: sc.UserID,
		Name:   input.Name,
		Icon:   input.Icon,
		Color:  input.Color,
	}
	m.categories[c.ID] = c
	m.created++
	return c, nil
}

func (m *mockCategoryUC) List(ctx context.Context, sc model.Scope) ([]category.Category, error) {
	var out []category.Category
	for _, c := range m.categories {
		if c.UserID == sc.UserID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *mockCategoryUC) Detail(ctx context.Context, sc model.Scope, id string) (category.Category, error) {
	return m.categories[id], nil
}

func (m *mockCategoryUC) Update(ctx context.Context, sc model.Scope, input category.UpdateCategoryInput) (category.Category, error) {
	return m.categories[input.ID], nil
}

func (m *mockCategoryUC) Delete(ctx context.Context, sc model.Scope, id string) error {
	delete(m.categories, id)
	return nil
}

func (m *mockCategoryUC) FindByExactName(ctx context.Context, sc model.Scope, name string) (category.Category, error) {
	for _, c := range m.categories {
		if c.UserID == sc.UserID && c.Name == name {
			return c, nil
		}
	}
	return category.Category{}, nil
}

func (m *mockCategoryUC) GetByIDs(ctx context.Context, sc model.Scope, ids []string) ([]category.Category, error) {
	out := make([]category.Category, 0, len(ids))
	for _, id := range ids {
		c, ok := m.categories[id]
		if !ok || c.UserID != sc.UserID {
			return nil, category.ErrNotOwned
		}
		out = append(out, c)
	}
	return out, nil
}

func newTestUseCase(gw *mockGateway, taskUC *mockTaskUC, categoryUC *mockCategoryUC, now time.Time) *implUseCase {
	return &implUseCase{
		l:          &mockLogger{},
		gateway:    gw,
		taskUC:     taskUC,
		categoryUC: categoryUC,
		now:        func() time.Time { return now },
	}
}
