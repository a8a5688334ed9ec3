package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"smart-todo/internal/extractor"
	"smart-todo/pkg/llmprovider"
)

// llmInterpreter asks the generative text service to read the sentence.
type llmInterpreter struct {
	gen llmprovider.Generator
}

// NewLLMInterpreter builds the production Interpreter.
func NewLLMInterpreter(gen llmprovider.Generator) extractor.Interpreter {
	return &llmInterpreter{gen: gen}
}

// llmTask is the JSON shape requested from the model. category is accepted
// as a string or an array.
type llmTask struct {
	Title       string      `json:"title"`
	Description string      `json:"description"`
	DueDate     *string     `json:"due_date"`
	Priority    string      `json:"priority"`
	Category    stringOrSet `json:"category"`
}

type stringOrSet []string

func (s *stringOrSet) UnmarshalJSON(b []byte) error {
	var list []string
	if err := json.Unmarshal(b, &list); err == nil {
		*s = list
		return nil
	}
	var one string
	if err := json.Unmarshal(b, &one); err != nil {
		return err
	}
	if one != "" {
		*s = []string{one}
	}
	return nil
}

func (i *llmInterpreter) Interpret(ctx context.Context, text string, now time.Time) (extractor.Candidate, error) {
	req := llmprovider.UserPrompt(extractSystemPrompt, buildExtractPrompt(text, now))
	req.Temperature = 0.2
	req.MaxTokens = 1024
	req.JSONMode = true

	resp, err := i.gen.GenerateContent(ctx, req)
	if err != nil {
		return extractor.Candidate{}, classifyRemoteError(err)
	}

	var t llmTask
	if err := json.Unmarshal([]byte(llmprovider.CleanJSON(resp.Text)), &t); err != nil {
		return extractor.Candidate{}, fmt.Errorf("%w: malformed response: %v", extractor.ErrExtractionFailed, err)
	}

	c := extractor.Candidate{
		Title:       t.Title,
		Description: t.Description,
		Priority:    t.Priority,
		Categories:  t.Category,
	}
	if t.DueDate != nil {
		c.DueDate = *t.DueDate
	}
	return c, nil
}

// classifyRemoteError maps provider failures onto the extractor taxonomy.
func classifyRemoteError(err error) error {
	switch {
	case errors.Is(err, llmprovider.ErrNoProvidersConfigured):
		return extractor.ErrNotConfigured
	case errors.Is(err, llmprovider.ErrProviderRateLimited):
		return fmt.Errorf("%w: %w", extractor.ErrQuotaExceeded, err)
	default:
		return fmt.Errorf("%w: %w", extractor.ErrExtractionFailed, err)
	}
}
