package http

import (
	"errors"
	"net/http"

	"smart-todo/internal/extractor"
	pkgErrors "smart-todo/pkg/errors"
)

const quotaMessage = "AI usage limit reached. Please retry after a short delay."

// mapError translates extractor errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	var tooLong *extractor.InputTooLongError
	switch {
	case errors.Is(err, extractor.ErrEmptyInput),
		errors.Is(err, extractor.ErrInputTooShort),
		errors.As(err, &tooLong):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, extractor.ErrQuotaExceeded):
		return pkgErrors.NewHTTPError(http.StatusTooManyRequests, quotaMessage)
	default:
		return pkgErrors.NewInternalError(err, h.production)
	}
}
