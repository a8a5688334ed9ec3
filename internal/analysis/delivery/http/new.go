package http

import (
	"smart-todo/internal/analysis"
	"smart-todo/pkg/datemath"
	"smart-todo/pkg/log"
)

type handler struct {
	l          log.Logger
	uc         analysis.UseCase
	parser     *datemath.Parser
	production bool
}

// New creates a new HTTP handler for the analysis domain.
func New(l log.Logger, uc analysis.UseCase, parser *datemath.Parser, production bool) *handler {
	return &handler{
		l:          l,
		uc:         uc,
		parser:     parser,
		production: production,
	}
}
