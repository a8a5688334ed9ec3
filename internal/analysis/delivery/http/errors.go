package http

import (
	"errors"
	"net/http"

	"smart-todo/internal/analysis"
	pkgErrors "smart-todo/pkg/errors"
)

const quotaMessage = "AI usage limit reached. Please retry after a short delay."

// mapError translates analysis errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, analysis.ErrInvalidPeriod):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, analysis.ErrQuotaExceeded):
		return pkgErrors.NewHTTPError(http.StatusTooManyRequests, quotaMessage)
	default:
		return pkgErrors.NewInternalError(err, h.production)
	}
}
