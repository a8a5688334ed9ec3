package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"smart-todo/internal/analysis"
	"smart-todo/internal/analysis/stats"
	"smart-todo/pkg/datemath"
	"smart-todo/pkg/llmprovider"
)

// llmNarrator asks the generative text service for the narrative.
type llmNarrator struct {
	gen llmprovider.Generator
}

// NewLLMNarrator builds the production Narrator.
func NewLLMNarrator(gen llmprovider.Generator) analysis.Narrator {
	return &llmNarrator{gen: gen}
}

func (n *llmNarrator) Narrate(ctx context.Context, period datemath.Period, snap stats.Snapshot) (analysis.Narrative, error) {
	req := llmprovider.UserPrompt(narrateSystemPrompt, buildNarratePrompt(period, snap))
	req.Temperature = 0.7
	req.MaxTokens = 2048
	req.JSONMode = true

	resp, err := n.gen.GenerateContent(ctx, req)
	if err != nil {
		return analysis.Narrative{}, classifyRemoteError(err)
	}

	narrative, err := decodeNarrative(resp.Text)
	if err != nil {
		return analysis.Narrative{}, fmt.Errorf("%w: %v", analysis.ErrAnalysisFailed, err)
	}
	return narrative, nil
}

// decodeNarrative checks the answer's shape: all four fields present, summary
// a string and the rest string arrays. The content itself is not checked.
func decodeNarrative(text string) (analysis.Narrative, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal([]byte(llmprovider.CleanJSON(text)), &raw); err != nil {
		return analysis.Narrative{}, fmt.Errorf("malformed response: %v", err)
	}

	var n analysis.Narrative
	if err := field(raw, "summary", &n.Summary); err != nil {
		return analysis.Narrative{}, err
	}
	for name, dst := range map[string]*[]string{
		"urgentTasks":     &n.UrgentTasks,
		"insights":        &n.Insights,
		"recommendations": &n.Recommendations,
	} {
		if err := field(raw, name, dst); err != nil {
			return analysis.Narrative{}, err
		}
		if *dst == nil {
			*dst = []string{}
		}
	}
	return n, nil
}

func field(raw map[string]json.RawMessage, name string, dst any) error {
	v, ok := raw[name]
	if !ok {
		return fmt.Errorf("response has no %q field", name)
	}
	if err := json.Unmarshal(v, dst); err != nil {
		return fmt.Errorf("response field %q has the wrong type: %v", name, err)
	}
	return nil
}

// classifyRemoteError maps provider failures onto the analysis taxonomy.
func classifyRemoteError(err error) error {
	switch {
	case errors.Is(err, llmprovider.ErrNoProvidersConfigured):
		return analysis.ErrNotConfigured
	case errors.Is(err, llmprovider.ErrProviderRateLimited):
		return fmt.Errorf("%w: %w", analysis.ErrQuotaExceeded, err)
	default:
		return fmt.Errorf("%w: %w", analysis.ErrAnalysisFailed, err)
	}
}
