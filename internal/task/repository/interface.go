package repository

import (
	"context"

	"taskmate/internal/task"
)

// Repository defines all data access methods for the Task entity.
type Repository interface {
	CreateTask(ctx context.Context, opt CreateTaskOptions) (task.Task, error)
	GetOneTask(ctx context.Context, opt GetOneTaskOptions) (task.Task, error)
	ListTasks(ctx context.Context, opt ListTasksOptions) ([]task.Task, int64, error)
	UpdateTask(ctx context.Context, opt UpdateTaskOptions) (task.Task, error)
	DeleteTask(ctx context.Context, opt DeleteTaskOptions) error

	// ReplaceTaskCategories rewrites the task_categories join rows for a task.
	ReplaceTaskCategories(ctx context.Context, opt ReplaceTaskCategoriesOptions) error
	// UpdateTaskStatuses sets the status of the given tasks in one statement.
	UpdateTaskStatuses(ctx context.Context, opt UpdateTaskStatusesOptions) error
}
