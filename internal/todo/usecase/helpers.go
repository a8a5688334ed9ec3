package usecase

import (
	"errors"
	"strings"

	"smart-todo/internal/model"
	"smart-todo/internal/todo"
	"smart-todo/internal/todo/repository"
)

func validateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return todo.ErrEmptyTitle
	}
	return nil
}

// validatePriority accepts the three levels and the empty (unset) value.
func validatePriority(p model.Priority) error {
	if p != model.PriorityNone && !p.Valid() {
		return todo.ErrInvalidPriority
	}
	return nil
}

func mapRepoError(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return todo.ErrTaskNotFound
	}
	return err
}
