package http

import (
	"taskmate/internal/user"
	pkgErrors "taskmate/pkg/errors"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case user.ErrNotFound:
		return pkgErrors.NewHTTPError(404, "user not found")
	case user.ErrEmailTaken, user.ErrUsernameTaken:
		return pkgErrors.NewHTTPError(409, err.Error())
	case user.ErrInvalidCredentials:
		return pkgErrors.NewHTTPError(401, err.Error())
	case user.ErrAccountDisabled:
		return pkgErrors.NewHTTPError(403, err.Error())
	case user.ErrWeakPassword, user.ErrInvalidResetToken:
		return pkgErrors.NewHTTPError(400, err.Error())
	default:
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}
