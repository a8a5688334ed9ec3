package http

import (
	"errors"
	"net/http"

	"smart-todo/internal/todo"
	"smart-todo/internal/todo/view"
	"smart-todo/pkg/datemath"
	pkgErrors "smart-todo/pkg/errors"
)

// mapError translates todo errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, todo.ErrTaskNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, todo.ErrEmptyTitle),
		errors.Is(err, todo.ErrInvalidPriority),
		errors.Is(err, view.ErrInvalidState),
		errors.Is(err, datemath.ErrInvalidTimestamp):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return pkgErrors.NewInternalError(err, h.production)
	}
}
