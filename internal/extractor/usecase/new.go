package usecase

import (
	"time"

	"smart-todo/internal/extractor"
	"smart-todo/pkg/log"
)

// implUseCase is the private implementation of extractor.UseCase.
type implUseCase struct {
	l           log.Logger
	interpreter extractor.Interpreter
	loc         *time.Location
	now         func() time.Time
}

// New creates a new extractor UseCase. Relative dates resolve in loc.
func New(l log.Logger, interpreter extractor.Interpreter, loc *time.Location) extractor.UseCase {
	return &implUseCase{
		l:           l,
		interpreter: interpreter,
		loc:         loc,
		now:         time.Now,
	}
}
