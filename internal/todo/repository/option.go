package repository

import (
	"time"

	"smart-todo/internal/model"
)

// CreateTaskOptions holds the caller-supplied fields of a new task. The store
// assigns the ID and the created timestamp.
type CreateTaskOptions struct {
	OwnerID     string
	Title       string
	Description string
	DueAt       *time.Time
	Priority    model.Priority
	Categories  []string
}

type GetOneTaskOptions struct {
	ID      string
	OwnerID string
}

// UpdateTaskOptions holds a partial update. Nil fields are left untouched.
// Completed drives CompletedAt: set on the transition to completed, cleared
// when reopened.
type UpdateTaskOptions struct {
	ID              string
	OwnerID         string
	Title           *string
	Description     *string
	DueAt           *time.Time
	ClearDue        bool
	Priority        *model.Priority
	Categories      *[]string
	Completed       *bool
	CalendarEventID *string
}

type DeleteTaskOptions struct {
	ID      string
	OwnerID string
}
