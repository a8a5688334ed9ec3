package analysis

import (
	"context"

	"smart-todo/internal/analysis/stats"
	"smart-todo/internal/model"
	"smart-todo/pkg/datemath"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Analyze summarizes the caller-supplied tasks that fall in the period window.
	Analyze(ctx context.Context, sc model.Scope, input AnalyzeInput) (AnalyzeOutput, error)
	// AnalyzeStored does the same over the caller's stored tasks.
	AnalyzeStored(ctx context.Context, sc model.Scope, period datemath.Period) (AnalyzeOutput, error)
	// Stats returns the aggregates over the caller's stored tasks without
	// calling the generative service.
	Stats(ctx context.Context, sc model.Scope, period datemath.Period) (StatsOutput, error)
}

// Narrator turns aggregates into a Narrative.
type Narrator interface {
	Narrate(ctx context.Context, period datemath.Period, snap stats.Snapshot) (Narrative, error)
}

// TaskLister reads an owner's stored tasks.
type TaskLister interface {
	ListTasks(ctx context.Context, ownerID string) ([]model.Task, error)
}
