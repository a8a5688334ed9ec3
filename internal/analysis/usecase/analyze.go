package usecase

import (
	"context"

	"smart-todo/internal/analysis"
	"smart-todo/internal/analysis/stats"
	"smart-todo/internal/model"
	"smart-todo/pkg/datemath"
)

// Analyze windows the tasks, aggregates them and asks the narrator for a
// summary. An empty window returns the canned empty narrative without
// calling the narrator.
func (uc *implUseCase) Analyze(ctx context.Context, sc model.Scope, input analysis.AnalyzeInput) (analysis.AnalyzeOutput, error) {
	if !input.Period.Valid() {
		return analysis.AnalyzeOutput{}, analysis.ErrInvalidPeriod
	}

	now := uc.now().In(uc.parser.Location())
	w := uc.parser.Window(input.Period, now)
	subset := stats.Select(input.Tasks, w)
	snap := stats.Compute(subset, now)

	out := analysis.AnalyzeOutput{Window: w, Stats: snap}
	if len(subset) == 0 {
		uc.l.Infof(ctx, "uc.Analyze: user=%s period=%s empty window", sc.UserID, input.Period)
		out.Narrative = EmptyNarrative(input.Period)
		return out, nil
	}

	uc.l.Infof(ctx, "uc.Analyze: user=%s period=%s tasks=%d", sc.UserID, input.Period, len(subset))
	narrative, err := uc.narrator.Narrate(ctx, input.Period, snap)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Analyze Narrate: %v", err)
		return analysis.AnalyzeOutput{}, err
	}
	out.Narrative = narrative
	return out, nil
}

// AnalyzeStored runs Analyze over the caller's stored tasks.
func (uc *implUseCase) AnalyzeStored(ctx context.Context, sc model.Scope, period datemath.Period) (analysis.AnalyzeOutput, error) {
	if !period.Valid() {
		return analysis.AnalyzeOutput{}, analysis.ErrInvalidPeriod
	}

	tasks, err := uc.tasks.ListTasks(ctx, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.AnalyzeStored ListTasks: %v", err)
		return analysis.AnalyzeOutput{}, err
	}
	return uc.Analyze(ctx, sc, analysis.AnalyzeInput{Period: period, Tasks: tasks})
}

// Stats aggregates the caller's stored tasks in the period window.
func (uc *implUseCase) Stats(ctx context.Context, sc model.Scope, period datemath.Period) (analysis.StatsOutput, error) {
	if !period.Valid() {
		return analysis.StatsOutput{}, analysis.ErrInvalidPeriod
	}

	tasks, err := uc.tasks.ListTasks(ctx, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Stats ListTasks: %v", err)
		return analysis.StatsOutput{}, err
	}

	now := uc.now().In(uc.parser.Location())
	w := uc.parser.Window(period, now)
	return analysis.StatsOutput{
		Window: w,
		Stats:  stats.Compute(stats.Select(tasks, w), now),
	}, nil
}
