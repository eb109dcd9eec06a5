package http

import (
	"taskmate/internal/task"
	pkgErrors "taskmate/pkg/errors"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case task.ErrNotFound:
		return pkgErrors.NewHTTPError(404, "task not found")
	case task.ErrInvalidTitle, task.ErrContentTooLong, task.ErrInvalidStatus,
		task.ErrInvalidPriority, task.ErrDueDateInPast:
		return pkgErrors.NewHTTPError(400, err.Error())
	case task.ErrCategoryNotOwned:
		return pkgErrors.NewHTTPError(403, err.Error())
	default:
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}
