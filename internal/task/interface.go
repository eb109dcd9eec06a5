package task

import (
	"context"
	"time"

	"taskmate/internal/model"
)

// UseCase defines all business operations on tasks.
type UseCase interface {
	Create(ctx context.Context, sc model.Scope, input CreateTaskInput) (Task, error)
	Detail(ctx context.Context, sc model.Scope, id string) (Task, error)
	List(ctx context.Context, sc model.Scope, input ListTasksInput) (ListTasksOutput, error)
	Update(ctx context.Context, sc model.Scope, input UpdateTaskInput) (Task, error)
	Delete(ctx context.Context, sc model.Scope, id string) error

	ChangeStatus(ctx context.Context, sc model.Scope, id string, st Status) (Task, error)
	ChangePriority(ctx context.Context, sc model.Scope, id string, p Priority) (Task, error)
	ToggleFavorite(ctx context.Context, sc model.Scope, id string) (Task, error)

	// GetByDate returns tasks whose due date falls within the given calendar day.
	GetByDate(ctx context.Context, sc model.Scope, date time.Time) ([]Task, error)
	// GetAll returns every task of the user, without pagination.
	GetAll(ctx context.Context, sc model.Scope) ([]Task, error)
	// FindByExactTitle returns the task whose trimmed title matches exactly.
	// The zero value is returned when no task matches.
	FindByExactTitle(ctx context.Context, sc model.Scope, title string) (Task, error)
	// ReplaceCategories overwrites the category assignments of a task.
	ReplaceCategories(ctx context.Context, sc model.Scope, id string, categoryIDs []string) (Task, error)
	// AddCategories merges the given ids into the task's existing assignments.
	AddCategories(ctx context.Context, sc model.Scope, id string, categoryIDs []string) (Task, error)
}
