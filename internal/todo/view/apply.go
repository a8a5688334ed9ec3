package view

import (
	"cmp"
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"smart-todo/internal/model"
)

// Apply filters tasks by search, status and priority (all conjunctive) and then
// sorts the survivors once. The input slice is never modified.
func Apply(tasks []model.Task, s State) []model.Task {
	s = s.Normalize()
	term := s.searchTerm()

	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if !matchSearch(t, term) || !matchStatus(t, s.Status) || !matchPriority(t, s.Priority) {
			continue
		}
		out = append(out, t)
	}

	sortTasks(out, s.SortKey, s.Direction)
	return out
}

func matchSearch(t model.Task, term string) bool {
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(t.Title), term)
}

func matchStatus(t model.Task, status Status) bool {
	switch status {
	case StatusCompleted:
		return t.Completed
	case StatusPending:
		return !t.Completed
	case StatusWaiting:
		return !t.Completed && !t.HasDue()
	}
	return true
}

func matchPriority(t model.Task, priority string) bool {
	if priority == PriorityAll {
		return true
	}
	return t.Priority.Valid() && string(t.Priority) == priority
}

// sortTasks sorts in place with a stable sort so ties keep their input order.
func sortTasks(tasks []model.Task, key SortKey, dir Direction) {
	sign := 1
	if dir == Desc {
		sign = -1
	}

	// A collator keeps internal buffers, so each call gets its own.
	var coll *collate.Collator
	if key == SortTitle {
		coll = collate.New(language.Korean)
	}

	slices.SortStableFunc(tasks, func(a, b model.Task) int {
		switch key {
		case SortDue:
			// Tasks without a due timestamp go last in both directions.
			switch {
			case a.DueAt == nil && b.DueAt == nil:
				return 0
			case a.DueAt == nil:
				return 1
			case b.DueAt == nil:
				return -1
			}
			return sign * a.DueAt.Compare(*b.DueAt)
		case SortPriority:
			return sign * cmp.Compare(a.Priority.Rank(), b.Priority.Rank())
		case SortTitle:
			return sign * coll.CompareString(a.Title, b.Title)
		default:
			return sign * a.CreatedAt.Compare(b.CreatedAt)
		}
	})
}
