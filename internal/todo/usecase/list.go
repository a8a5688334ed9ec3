package usecase

import (
	"context"

	"smart-todo/internal/model"
	"smart-todo/internal/todo"
	"smart-todo/internal/todo/view"
)

// List loads the caller's tasks and runs them through the view.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input todo.ListInput) (todo.ListOutput, error) {
	state := input.View.Normalize()
	if err := state.Validate(); err != nil {
		return todo.ListOutput{}, err
	}

	tasks, err := uc.repo.ListTasks(ctx, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListTasks: %v", err)
		return todo.ListOutput{}, err
	}

	return todo.ListOutput{
		Tasks: view.Apply(tasks, state),
		Total: len(tasks),
	}, nil
}
