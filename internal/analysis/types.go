package analysis

import (
	"smart-todo/internal/analysis/stats"
	"smart-todo/internal/model"
	"smart-todo/pkg/datemath"
)

// Narrative is the generated productivity summary.
type Narrative struct {
	Summary         string
	UrgentTasks     []string
	Insights        []string
	Recommendations []string
}

// --- UseCase Inputs ---

// AnalyzeInput carries a caller-supplied task snapshot.
type AnalyzeInput struct {
	Period datemath.Period
	Tasks  []model.Task
}

// --- UseCase Outputs ---

type AnalyzeOutput struct {
	Window    datemath.Window
	Stats     stats.Snapshot
	Narrative Narrative
}

type StatsOutput struct {
	Window datemath.Window
	Stats  stats.Snapshot
}
