package todo

import (
	"context"

	"smart-todo/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Create(ctx context.Context, sc model.Scope, input CreateInput) (CreateOutput, error)
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)
	Detail(ctx context.Context, sc model.Scope, id string) (DetailOutput, error)
	Update(ctx context.Context, sc model.Scope, input UpdateInput) (UpdateOutput, error)
	Toggle(ctx context.Context, sc model.Scope, id string) (UpdateOutput, error)
	Delete(ctx context.Context, sc model.Scope, id string) error
}

// CalendarSync mirrors tasks with a due timestamp onto an external calendar.
type CalendarSync interface {
	Schedule(ctx context.Context, task model.Task) (eventID string, err error)
	Unschedule(ctx context.Context, eventID string) error
}
