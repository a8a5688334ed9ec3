package model

import (
	"strings"
	"time"
)

// Priority is the importance level of a task. The zero value means unset.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
	PriorityNone   Priority = ""
)

// Valid reports whether p is one of the three assignable priorities.
func (p Priority) Valid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// Rank maps the priority onto high:3, medium:2, low:1, unset:0.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	}
	return 0
}

// Bucket is the label used when tallying by priority; unset tasks go to "unset".
func (p Priority) Bucket() string {
	if p.Valid() {
		return string(p)
	}
	return "unset"
}

// Task is a to-do record owned by a single user.
type Task struct {
	ID          string
	OwnerID     string
	Title       string
	Description string
	CreatedAt   time.Time
	DueAt       *time.Time
	Priority    Priority
	Categories  []string
	Completed   bool
	CompletedAt *time.Time

	// CalendarEventID links the task to its Google Calendar event, if any.
	CalendarEventID string
}

// HasDue reports whether the task carries a due timestamp.
func (t Task) HasDue() bool {
	return t.DueAt != nil
}

// CategorySet returns the task categories with blanks and duplicates removed,
// keeping first-seen order.
func (t Task) CategorySet() []string {
	return UniqueStrings(t.Categories)
}

// UniqueStrings trims values and drops empties and duplicates, keeping order.
func UniqueStrings(values []string) []string {
	out := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
