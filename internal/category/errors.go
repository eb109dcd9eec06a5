package category

import "errors"

var (
	ErrNotFound       = errors.New("category not found")
	ErrDuplicateName  = errors.New("category name already exists")
	ErrInvalidIcon    = errors.New("invalid icon")
	ErrInvalidColor   = errors.New("invalid color format")
	ErrInvalidName    = errors.New("category name must be 1-30 characters")
	ErrNotOwned       = errors.New("one or more categories do not belong to this user")
)
