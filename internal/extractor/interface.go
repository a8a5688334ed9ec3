package extractor

import (
	"context"
	"time"

	"smart-todo/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Extract(ctx context.Context, sc model.Scope, input ExtractInput) (ExtractOutput, error)
}

// Interpreter turns normalized free text into a raw candidate. Relative
// dates are resolved against now, in now's location.
type Interpreter interface {
	Interpret(ctx context.Context, text string, now time.Time) (Candidate, error)
}
