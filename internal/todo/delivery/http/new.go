package http

import (
	"smart-todo/internal/todo"
	"smart-todo/pkg/datemath"
	"smart-todo/pkg/log"
)

type handler struct {
	l          log.Logger
	uc         todo.UseCase
	parser     *datemath.Parser
	production bool
}

// New creates a new HTTP handler for the todo domain. Timestamps are rendered
// in the parser's location and zone-less inputs are read in it.
func New(l log.Logger, uc todo.UseCase, parser *datemath.Parser, production bool) *handler {
	return &handler{
		l:          l,
		uc:         uc,
		parser:     parser,
		production: production,
	}
}
