package usecase

import (
	"smart-todo/internal/todo"
	"smart-todo/internal/todo/repository"
	"smart-todo/pkg/log"
)

// implUseCase is the private implementation of todo.UseCase.
type implUseCase struct {
	l        log.Logger
	repo     repository.Repository
	calendar todo.CalendarSync
}

// New creates a new todo UseCase. calendar may be nil.
func New(l log.Logger, repo repository.Repository, calendar todo.CalendarSync) todo.UseCase {
	return &implUseCase{
		l:        l,
		repo:     repo,
		calendar: calendar,
	}
}
