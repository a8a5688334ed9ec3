// Package view derives the displayed task list from a task set and the
// user's filter/sort selections.
package view

import (
	"fmt"
	"strings"
)

// Status selects tasks by completion state. Waiting is a subset of pending:
// incomplete tasks without a due timestamp.
type Status string

const (
	StatusAll       Status = "all"
	StatusCompleted Status = "completed"
	StatusPending   Status = "pending"
	StatusWaiting   Status = "waiting"
)

// PriorityAll disables the priority filter.
const PriorityAll = "all"

// SortKey names the field tasks are ordered by.
type SortKey string

const (
	SortCreated  SortKey = "created"
	SortDue      SortKey = "due"
	SortPriority SortKey = "priority"
	SortTitle    SortKey = "title"
)

// Direction is the sort direction.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// State is an immutable set of filter/sort selections. Every With* method
// returns a new State and leaves the receiver untouched.
type State struct {
	Search    string
	Status    Status
	Priority  string
	SortKey   SortKey
	Direction Direction
}

// DefaultState shows every task, newest first.
func DefaultState() State {
	return State{
		Status:    StatusAll,
		Priority:  PriorityAll,
		SortKey:   SortCreated,
		Direction: Desc,
	}
}

func (s State) WithSearch(q string) State {
	s.Search = q
	return s
}

func (s State) WithStatus(status Status) State {
	s.Status = status
	return s
}

func (s State) WithPriority(priority string) State {
	s.Priority = priority
	return s
}

func (s State) WithSort(key SortKey, dir Direction) State {
	s.SortKey = key
	s.Direction = dir
	return s
}

// ToggleDirection flips asc and desc.
func (s State) ToggleDirection() State {
	if s.Direction == Desc {
		s.Direction = Asc
	} else {
		s.Direction = Desc
	}
	return s
}

// Normalize fills empty selections with their defaults.
func (s State) Normalize() State {
	def := DefaultState()
	if s.Status == "" {
		s.Status = def.Status
	}
	if s.Priority == "" {
		s.Priority = def.Priority
	}
	if s.SortKey == "" {
		s.SortKey = def.SortKey
	}
	if s.Direction == "" {
		s.Direction = def.Direction
	}
	return s
}

// Validate reports the first selection that is not a known value.
func (s State) Validate() error {
	switch s.Status {
	case StatusAll, StatusCompleted, StatusPending, StatusWaiting:
	default:
		return fmt.Errorf("%w: status must be one of all|completed|pending|waiting, got %q", ErrInvalidState, s.Status)
	}
	switch s.Priority {
	case PriorityAll, "high", "medium", "low":
	default:
		return fmt.Errorf("%w: priority must be one of all|high|medium|low, got %q", ErrInvalidState, s.Priority)
	}
	switch s.SortKey {
	case SortCreated, SortDue, SortPriority, SortTitle:
	default:
		return fmt.Errorf("%w: sort must be one of created|due|priority|title, got %q", ErrInvalidState, s.SortKey)
	}
	switch s.Direction {
	case Asc, Desc:
	default:
		return fmt.Errorf("%w: order must be asc or desc, got %q", ErrInvalidState, s.Direction)
	}
	return nil
}

func (s State) searchTerm() string {
	return strings.ToLower(strings.TrimSpace(s.Search))
}
