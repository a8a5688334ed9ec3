package extractor

import (
	"time"

	"smart-todo/internal/model"
)

// Candidate is what an Interpreter read out of the text, before any local
// checks. Fields are raw strings exactly as the interpreter produced them.
type Candidate struct {
	Title       string
	Description string
	DueDate     string
	Priority    string
	Categories  []string
}

// Task is a sanitized candidate ready to be stored.
type Task struct {
	Title       string
	Description string
	DueAt       *time.Time
	Priority    model.Priority
	Categories  []string
}

// --- UseCase Inputs ---

type ExtractInput struct {
	Text string
}

// --- UseCase Outputs ---

type ExtractOutput struct {
	// Normalized is the input after whitespace collapsing.
	Normalized string
	Task       Task
}
