package repository

import (
	"context"

	"smart-todo/internal/model"
)

// Repository is the Task Record Store. Every read and write is scoped by
// owner; a task belonging to someone else is reported as ErrNotFound.
type Repository interface {
	CreateTask(ctx context.Context, opt CreateTaskOptions) (model.Task, error)
	GetOneTask(ctx context.Context, opt GetOneTaskOptions) (model.Task, error)
	// ListTasks returns the owner's tasks, newest first.
	ListTasks(ctx context.Context, ownerID string) ([]model.Task, error)
	UpdateTask(ctx context.Context, opt UpdateTaskOptions) (model.Task, error)
	DeleteTask(ctx context.Context, opt DeleteTaskOptions) error
}
