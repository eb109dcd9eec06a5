package http

import (
	"taskmate/internal/ai"
	"taskmate/internal/task"
	pkgErrors "taskmate/pkg/errors"
)

// mapError translates AI and task domain errors into HTTP errors.
func (h *handler) mapError(err error) error {
	switch err {
	case ai.ErrParse, ai.ErrInvalidTitle:
		return pkgErrors.NewHTTPError(400, err.Error())
	case ai.ErrUnavailable:
		return pkgErrors.NewHTTPError(503, err.Error())
	case task.ErrNotFound:
		return pkgErrors.NewHTTPError(404, "task not found")
	default:
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}

func pkgDateError() error {
	return pkgErrors.NewHTTPError(400, "date must be YYYY-MM-DD")
}
