package http

import (
	"errors"
	"fmt"
	"time"

	"smart-todo/internal/analysis"
	"smart-todo/internal/analysis/stats"
	"smart-todo/internal/model"
	"smart-todo/pkg/datemath"
)

var errTodosRequired = errors.New("todos must be an array")

// --- Request DTOs ---

type todoReq struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	CreatedDate string   `json:"created_date"`
	DueDate     *string  `json:"due_date"`
	Priority    string   `json:"priority"`
	Category    []string `json:"category"`
	Completed   bool     `json:"completed"`
	CompletedAt *string  `json:"completed_at"`
}

func (r todoReq) toTask(parser *datemath.Parser) (model.Task, error) {
	created, err := parser.ParseTimestamp(r.CreatedDate)
	if err != nil {
		return model.Task{}, fmt.Errorf("created_date: %w", err)
	}

	t := model.Task{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		CreatedAt:   created,
		Priority:    model.Priority(r.Priority),
		Categories:  r.Category,
		Completed:   r.Completed,
	}
	if t.DueAt, err = optionalTime(parser, r.DueDate); err != nil {
		return model.Task{}, fmt.Errorf("due_date: %w", err)
	}
	if t.CompletedAt, err = optionalTime(parser, r.CompletedAt); err != nil {
		return model.Task{}, fmt.Errorf("completed_at: %w", err)
	}
	return t, nil
}

func optionalTime(parser *datemath.Parser, s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := parser.ParseTimestamp(*s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

type analyzeReq struct {
	Todos  *[]todoReq `json:"todos"`
	Period string     `json:"period"`
}

func (r analyzeReq) validate() error {
	if r.Todos == nil {
		return errTodosRequired
	}
	if !datemath.Period(r.Period).Valid() {
		return analysis.ErrInvalidPeriod
	}
	return nil
}

func (r analyzeReq) toInput(parser *datemath.Parser) (analysis.AnalyzeInput, error) {
	tasks := make([]model.Task, 0, len(*r.Todos))
	for i, todo := range *r.Todos {
		t, err := todo.toTask(parser)
		if err != nil {
			return analysis.AnalyzeInput{}, fmt.Errorf("todos[%d].%w", i, err)
		}
		tasks = append(tasks, t)
	}
	return analysis.AnalyzeInput{Period: datemath.Period(r.Period), Tasks: tasks}, nil
}

// ---

type periodReq struct {
	Period string `form:"period"`
}

func (r periodReq) validate() error {
	if !datemath.Period(r.Period).Valid() {
		return analysis.ErrInvalidPeriod
	}
	return nil
}

// --- Response DTOs ---

type analyzeResp struct {
	Summary         string   `json:"summary"`
	UrgentTasks     []string `json:"urgentTasks"`
	Insights        []string `json:"insights"`
	Recommendations []string `json:"recommendations"`
}

func (h *handler) newAnalyzeResp(out analysis.AnalyzeOutput) analyzeResp {
	n := out.Narrative
	return analyzeResp{
		Summary:         n.Summary,
		UrgentTasks:     nonNil(n.UrgentTasks),
		Insights:        nonNil(n.Insights),
		Recommendations: nonNil(n.Recommendations),
	}
}

type statsResp struct {
	Period string         `json:"period"`
	Start  string         `json:"start"`
	End    string         `json:"end"`
	Stats  stats.Snapshot `json:"stats"`
}

func (h *handler) newStatsResp(out analysis.StatsOutput) statsResp {
	return statsResp{
		Period: string(out.Window.Period),
		Start:  out.Window.Start.Format(time.RFC3339Nano),
		End:    out.Window.End.Format(time.RFC3339Nano),
		Stats:  out.Stats,
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
