package task

import (
	"strings"
	"time"
)

// Status is the lifecycle state of a task.
type Status string

const (
	StatusPending Status = "PENDING"
	StatusDone    Status = "DONE"
	StatusMissed  Status = "MISSED"
)

// IsValid reports whether s is a known status.
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusDone, StatusMissed:
		return true
	}
	return false
}

// Priority is the urgency level of a task.
type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
)

// IsValid reports whether p is a known priority.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

const (
	MaxTitleLength   = 100
	MaxContentLength = 1000
)

// Task is a single unit of work owned by a user.
type Task struct {
	ID          string
	UserID      string
	Title       string
	Content     string
	DueDate     *time.Time
	Status      Status
	Priority    Priority
	IsFavorite  bool
	CategoryIDs []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NormalizeText trims leading/trailing whitespace and collapses internal
// whitespace runs into single spaces.
func NormalizeText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

type CreateTaskInput struct {
	Title       string
	Content     string
	DueDate     *time.Time
	Status      Status
	Priority    Priority
	IsFavorite  bool
	CategoryIDs []string
}

type UpdateTaskInput struct {
	ID          string
	Title       string
	Content     string
	DueDate     *time.Time
	Status      Status
	Priority    Priority
	IsFavorite  bool
	CategoryIDs []string
}

type ListTasksInput struct {
	Status   *Status
	Priority *Priority
	Favorite *bool
	Page     int
	PageSize int
}

type ListTasksOutput struct {
	Tasks    []Task
	Total    int64
	Page     int
	PageSize int
}
