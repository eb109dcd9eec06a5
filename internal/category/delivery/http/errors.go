package http

import (
	"taskmate/internal/category"
	pkgErrors "taskmate/pkg/errors"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case category.ErrNotFound:
		return pkgErrors.NewHTTPError(404, "category not found")
	case category.ErrDuplicateName:
		return pkgErrors.NewHTTPError(409, "category name already exists")
	case category.ErrInvalidName, category.ErrInvalidIcon, category.ErrInvalidColor:
		return pkgErrors.NewHTTPError(400, err.Error())
	case category.ErrNotOwned:
		return pkgErrors.NewHTTPError(403, err.Error())
	default:
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}
