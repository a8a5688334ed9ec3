package todo

import (
	"time"

	"smart-todo/internal/model"
	"smart-todo/internal/todo/view"
)

// --- UseCase Inputs ---

type CreateInput struct {
	Title       string
	Description string
	DueAt       *time.Time
	Priority    model.Priority
	Categories  []string
}

type ListInput struct {
	View view.State
}

// UpdateInput carries a partial update. Nil fields are left untouched.
type UpdateInput struct {
	ID          string
	Title       *string
	Description *string
	DueAt       *time.Time
	ClearDue    bool
	Priority    *model.Priority
	Categories  *[]string
	Completed   *bool
}

// --- UseCase Outputs ---

type CreateOutput struct {
	Task model.Task
}

type ListOutput struct {
	Tasks []model.Task
	// Total is the size of the owner's task set before filtering.
	Total int
}

type DetailOutput struct {
	Task model.Task
}

type UpdateOutput struct {
	Task model.Task
}
