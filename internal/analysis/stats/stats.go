// Package stats computes the productivity aggregates behind the analysis
// summary. Everything here is a pure function of a task subset and "now".
package stats

import (
	"math"
	"slices"
	"time"

	"smart-todo/internal/model"
	"smart-todo/pkg/datemath"
)

const maxUrgent = 5

var priorityBuckets = []model.Priority{
	model.PriorityHigh,
	model.PriorityMedium,
	model.PriorityLow,
	model.PriorityNone,
}

// Select returns the tasks whose created or due timestamp falls inside w,
// keeping input order.
func Select(tasks []model.Task, w datemath.Window) []model.Task {
	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if w.Contains(t.CreatedAt) || (t.DueAt != nil && w.Contains(*t.DueAt)) {
			out = append(out, t)
		}
	}
	return out
}

// Compute aggregates tasks as seen at now. Hours and weekdays are read in
// now's location.
func Compute(tasks []model.Task, now time.Time) Snapshot {
	loc := now.Location()
	s := Snapshot{
		Total:  len(tasks),
		Urgent: []Urgent{},
	}

	priority := make(map[model.Priority]*Rate, len(priorityBuckets))
	for _, p := range priorityBuckets {
		priority[p] = &Rate{}
	}
	categories := newCounter[*Rate]()
	weekdays := make([]Rate, 7)
	hours := make([]Rate, len(hourLabels))
	postponed := newPatternCounter()
	finished := newPatternCounter()

	for _, t := range tasks {
		cats := t.CategorySet()
		pb := t.Priority
		if !pb.Valid() {
			pb = model.PriorityNone
		}

		priority[pb].Total++
		for _, c := range cats {
			categories.get(c, func() *Rate { return &Rate{} }).Total++
		}
		created := t.CreatedAt.In(loc)
		weekdays[created.Weekday()].Total++
		hb := hourBucket(created.Hour())
		hours[hb].Total++

		if t.Completed {
			s.Completed++
			priority[pb].Completed++
			for _, c := range cats {
				categories.get(c, nil).Completed++
			}
			weekdays[created.Weekday()].Completed++
			hours[hb].Completed++
			finished.add(cats, pb)
		}

		if t.DueAt != nil {
			s.Deadline.WithDueDate++
			switch {
			case !t.Completed && t.DueAt.Before(now):
				s.Deadline.Overdue++
				postponed.add(cats, pb)
			case t.Completed && completedBy(t, *t.DueAt):
				s.Deadline.CompletedOnTime++
			}
			if !t.Completed {
				s.TimeOfDayLoad.add(t.DueAt.In(loc).Hour())
			}
		}

		if isUrgent(t, now) && len(s.Urgent) < maxUrgent {
			s.Urgent = append(s.Urgent, Urgent{ID: t.ID, Title: t.Title, Priority: t.Priority, DueAt: t.DueAt})
		}
	}

	s.CompletionRate = percent(s.Completed, s.Total)
	s.Deadline.ComplianceRate = percent(s.Deadline.CompletedOnTime, s.Deadline.WithDueDate)

	s.ByPriority = make([]Productivity, 0, len(priorityBuckets))
	for _, p := range priorityBuckets {
		s.ByPriority = append(s.ByPriority, Productivity{Label: p.Bucket(), Rate: priority[p].withRate()})
	}

	s.ByCategory = make([]CategoryRate, 0, len(categories.order))
	for _, c := range categories.order {
		s.ByCategory = append(s.ByCategory, CategoryRate{Category: c, Rate: categories.values[c].withRate()})
	}

	s.ByWeekday = make([]Productivity, 0, 7)
	for d := time.Sunday; d <= time.Saturday; d++ {
		s.ByWeekday = append(s.ByWeekday, Productivity{Label: d.String(), Rate: weekdays[d].withRate()})
	}
	s.MostProductiveDay = mostProductive(s.ByWeekday)

	s.ByHour = make([]Productivity, 0, len(hourLabels))
	for i, label := range hourLabels {
		s.ByHour = append(s.ByHour, Productivity{Label: label, Rate: hours[i].withRate()})
	}
	s.MostProductiveTime = mostProductive(s.ByHour)

	s.Postponed = postponed.pattern()
	s.Finished = finished.pattern()
	return s
}

// completedBy reports whether t was finished no later than due. Tasks
// completed before completion timestamps were recorded fall back to their
// creation time.
func completedBy(t model.Task, due time.Time) bool {
	if t.CompletedAt != nil {
		return !t.CompletedAt.After(due)
	}
	return !t.CreatedAt.After(due)
}

// isUrgent reports whether an open task is high priority or due within a day.
func isUrgent(t model.Task, now time.Time) bool {
	if t.Completed {
		return false
	}
	if t.Priority == model.PriorityHigh {
		return true
	}
	return t.DueAt != nil && math.Floor(t.DueAt.Sub(now).Hours()/24) <= 1
}

var hourLabels = []string{LabelDawn, LabelMorning, LabelAfternoon, LabelEvening}

func hourBucket(h int) int {
	switch {
	case h < 6:
		return 0
	case h < 12:
		return 1
	case h < 18:
		return 2
	}
	return 3
}

func (l *Load) add(h int) {
	switch {
	case h >= 6 && h < 12:
		l.Morning++
	case h >= 12 && h < 18:
		l.Afternoon++
	case h >= 18 && h < 22:
		l.Evening++
	default:
		l.Other++
	}
}

// mostProductive picks the label with the highest completed/created ratio
// among labels with at least one task. The first label wins a tie.
func mostProductive(ps []Productivity) string {
	best, bestRatio := "", -1.0
	for _, p := range ps {
		if p.Total == 0 {
			continue
		}
		ratio := float64(p.Completed) / float64(p.Total)
		if ratio > bestRatio {
			best, bestRatio = p.Label, ratio
		}
	}
	return best
}

func (r Rate) withRate() Rate {
	r.Rate = percent(r.Completed, r.Total)
	return r
}

func percent(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}

// counter keeps values keyed by label in first-seen order.
type counter[V any] struct {
	order  []string
	values map[string]V
}

func newCounter[V any]() *counter[V] {
	return &counter[V]{values: make(map[string]V)}
}

// get returns the value for key, creating it with init when missing.
func (c *counter[V]) get(key string, init func() V) V {
	v, ok := c.values[key]
	if !ok && init != nil {
		v = init()
		c.values[key] = v
		c.order = append(c.order, key)
	}
	return v
}

type patternCounter struct {
	category *counter[*int]
	priority *counter[*int]
}

func newPatternCounter() *patternCounter {
	return &patternCounter{category: newCounter[*int](), priority: newCounter[*int]()}
}

func (p *patternCounter) add(categories []string, priority model.Priority) {
	for _, c := range categories {
		*p.category.get(c, newInt)++
	}
	*p.priority.get(priority.Bucket(), newInt)++
}

func (p *patternCounter) pattern() Pattern {
	return Pattern{ByCategory: rank(p.category), ByPriority: rank(p.priority)}
}

func newInt() *int { return new(int) }

func rank(c *counter[*int]) []Count {
	out := make([]Count, 0, len(c.order))
	for _, k := range c.order {
		out = append(out, Count{Label: k, Count: *c.values[k]})
	}
	slices.SortStableFunc(out, func(a, b Count) int { return b.Count - a.Count })
	return out
}
