package usecase

import (
	"time"

	"smart-todo/internal/analysis"
	"smart-todo/pkg/datemath"
	"smart-todo/pkg/log"
)

// implUseCase is the private implementation of analysis.UseCase.
type implUseCase struct {
	l        log.Logger
	narrator analysis.Narrator
	tasks    analysis.TaskLister
	parser   *datemath.Parser
	now      func() time.Time
}

// New creates a new analysis UseCase. Windows are computed in the parser's
// location.
func New(l log.Logger, narrator analysis.Narrator, tasks analysis.TaskLister, parser *datemath.Parser) analysis.UseCase {
	return &implUseCase{
		l:        l,
		narrator: narrator,
		tasks:    tasks,
		parser:   parser,
		now:      time.Now,
	}
}
