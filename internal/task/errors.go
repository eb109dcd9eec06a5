package task

import "errors"

var (
	ErrNotFound        = errors.New("task not found")
	ErrInvalidTitle    = errors.New("task title must be 1-100 characters")
	ErrContentTooLong  = errors.New("task content must not exceed 1000 characters")
	ErrInvalidStatus   = errors.New("invalid task status")
	ErrInvalidPriority = errors.New("invalid task priority")
	ErrDueDateInPast   = errors.New("due date must be in the future")
	ErrCategoryNotOwned = errors.New("one or more categories do not belong to the user")
)
