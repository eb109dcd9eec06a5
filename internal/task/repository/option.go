package repository

import (
	"time"

	"taskmate/internal/task"
)

// CreateTaskOptions holds parameters for inserting a new Task.
type CreateTaskOptions struct {
	UserID      string
	Title       string
	Content     string
	DueDate     *time.Time
	Status      task.Status
	Priority    task.Priority
	IsFavorite  bool
	CategoryIDs []string
}

// GetOneTaskOptions holds filter parameters for fetching a single Task.
// All non-empty fields are applied as AND conditions. ExactTitle matches
// the stored title after trimming.
type GetOneTaskOptions struct {
	ID         string
	UserID     string
	ExactTitle string
}

// ListTasksOptions holds filter and paging parameters for listing Tasks.
// When Page or PageSize is zero the full result set is returned.
type ListTasksOptions struct {
	UserID   string
	Status   *task.Status
	Priority *task.Priority
	Favorite *bool
	// DueFrom/DueTo bound the due date as [DueFrom, DueTo).
	DueFrom  *time.Time
	DueTo    *time.Time
	Page     int
	PageSize int
}

// UpdateTaskOptions holds parameters for updating an existing Task.
type UpdateTaskOptions struct {
	ID          string
	UserID      string
	Title       string
	Content     string
	DueDate     *time.Time
	Status      task.Status
	Priority    task.Priority
	IsFavorite  bool
	CategoryIDs []string
}

// DeleteTaskOptions holds parameters for deleting a Task.
type DeleteTaskOptions struct {
	ID     string
	UserID string
}

// ReplaceTaskCategoriesOptions holds parameters for rewriting a Task's
// category assignments.
type ReplaceTaskCategoriesOptions struct {
	TaskID      string
	CategoryIDs []string
}

// UpdateTaskStatusesOptions holds parameters for bulk status updates.
type UpdateTaskStatusesOptions struct {
	IDs    []string
	Status task.Status
}
