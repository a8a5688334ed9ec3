package usecase

import (
	"context"

	"smart-todo/internal/model"
	"smart-todo/internal/todo"
	repo "smart-todo/internal/todo/repository"
)

// Detail returns one of the caller's tasks.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id string) (todo.DetailOutput, error) {
	task, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{ID: id, OwnerID: sc.UserID})
	if err != nil {
		return todo.DetailOutput{}, mapRepoError(err)
	}
	return todo.DetailOutput{Task: task}, nil
}

// Update applies a partial update to one of the caller's tasks.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input todo.UpdateInput) (todo.UpdateOutput, error) {
	if input.Title != nil {
		if err := validateTitle(*input.Title); err != nil {
			return todo.UpdateOutput{}, err
		}
	}
	if input.Priority != nil {
		if err := validatePriority(*input.Priority); err != nil {
			return todo.UpdateOutput{}, err
		}
	}

	task, err := uc.repo.UpdateTask(ctx, repo.UpdateTaskOptions{
		ID:          input.ID,
		OwnerID:     sc.UserID,
		Title:       input.Title,
		Description: input.Description,
		DueAt:       input.DueAt,
		ClearDue:    input.ClearDue,
		Priority:    input.Priority,
		Categories:  input.Categories,
		Completed:   input.Completed,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateTask: %v", err)
		return todo.UpdateOutput{}, mapRepoError(err)
	}
	return todo.UpdateOutput{Task: task}, nil
}

// Toggle flips the completed flag of one of the caller's tasks.
func (uc *implUseCase) Toggle(ctx context.Context, sc model.Scope, id string) (todo.UpdateOutput, error) {
	current, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{ID: id, OwnerID: sc.UserID})
	if err != nil {
		return todo.UpdateOutput{}, mapRepoError(err)
	}

	completed := !current.Completed
	task, err := uc.repo.UpdateTask(ctx, repo.UpdateTaskOptions{
		ID:        id,
		OwnerID:   sc.UserID,
		Completed: &completed,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Toggle UpdateTask: %v", err)
		return todo.UpdateOutput{}, mapRepoError(err)
	}
	return todo.UpdateOutput{Task: task}, nil
}

// Delete removes one of the caller's tasks and its calendar event.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	task, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{ID: id, OwnerID: sc.UserID})
	if err != nil {
		return mapRepoError(err)
	}

	if err := uc.repo.DeleteTask(ctx, repo.DeleteTaskOptions{ID: id, OwnerID: sc.UserID}); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteTask: %v", err)
		return mapRepoError(err)
	}

	if uc.calendar != nil && task.CalendarEventID != "" {
		if err := uc.calendar.Unschedule(ctx, task.CalendarEventID); err != nil {
			uc.l.Warnf(ctx, "uc.Delete Unschedule: event=%s: %v", task.CalendarEventID, err)
		}
	}
	return nil
}
