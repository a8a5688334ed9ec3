package http

import (
	"errors"
	"time"

	"smart-todo/internal/extractor"
)

var errInputRequired = errors.New("input is required")

// --- Request DTOs ---

type extractReq struct {
	Input *string `json:"input"`
}

func (r extractReq) validate() error {
	if r.Input == nil {
		return errInputRequired
	}
	return nil
}

func (r extractReq) toInput() extractor.ExtractInput {
	return extractor.ExtractInput{Text: *r.Input}
}

// --- Response DTOs ---

type extractResp struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	DueDate     *string  `json:"due_date"`
	Priority    string   `json:"priority"`
	Category    []string `json:"category"`
}

func (h *handler) newExtractResp(out extractor.ExtractOutput) extractResp {
	t := out.Task

	var due *string
	if t.DueAt != nil {
		s := t.DueAt.Format(time.RFC3339)
		due = &s
	}

	return extractResp{
		Title:       t.Title,
		Description: t.Description,
		DueDate:     due,
		Priority:    string(t.Priority),
		Category:    t.Categories,
	}
}
