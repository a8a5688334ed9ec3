package http

import (
	"smart-todo/internal/extractor"
	"smart-todo/pkg/log"
)

type handler struct {
	l          log.Logger
	uc         extractor.UseCase
	production bool
}

// New creates a new HTTP handler for the extractor domain. production hides
// internal error detail from responses.
func New(l log.Logger, uc extractor.UseCase, production bool) *handler {
	return &handler{
		l:          l,
		uc:         uc,
		production: production,
	}
}
