package usecase

import (
	"context"

	"smart-todo/internal/model"
	"smart-todo/internal/todo"
	repo "smart-todo/internal/todo/repository"
)

// Create stores a new task for the caller. A task with a due timestamp is
// also put on the calendar when sync is enabled; sync failures never fail
// the create.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input todo.CreateInput) (todo.CreateOutput, error) {
	if err := validateTitle(input.Title); err != nil {
		return todo.CreateOutput{}, err
	}
	if err := validatePriority(input.Priority); err != nil {
		return todo.CreateOutput{}, err
	}

	task, err := uc.repo.CreateTask(ctx, repo.CreateTaskOptions{
		OwnerID:     sc.UserID,
		Title:       input.Title,
		Description: input.Description,
		DueAt:       input.DueAt,
		Priority:    input.Priority,
		Categories:  input.Categories,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateTask: %v", err)
		return todo.CreateOutput{}, err
	}

	return todo.CreateOutput{Task: uc.schedule(ctx, task)}, nil
}

func (uc *implUseCase) schedule(ctx context.Context, task model.Task) model.Task {
	if uc.calendar == nil || task.DueAt == nil {
		return task
	}

	eventID, err := uc.calendar.Schedule(ctx, task)
	if err != nil {
		uc.l.Warnf(ctx, "uc.Create Schedule: task=%s: %v", task.ID, err)
		return task
	}

	updated, err := uc.repo.UpdateTask(ctx, repo.UpdateTaskOptions{
		ID:              task.ID,
		OwnerID:         task.OwnerID,
		CalendarEventID: &eventID,
	})
	if err != nil {
		uc.l.Warnf(ctx, "uc.Create UpdateTask calendar_event_id: %v", err)
		return task
	}
	return updated
}
