package datemath

import "time"

// Period names an analysis window.
type Period string

const (
	PeriodToday Period = "today"
	PeriodWeek  Period = "week"
)

// Valid reports whether p is a known period.
func (p Period) Valid() bool {
	return p == PeriodToday || p == PeriodWeek
}

// Window is an inclusive [Start, End] range labelled with its period.
type Window struct {
	Period Period
	Start  time.Time
	End    time.Time
}

// Contains reports whether t falls inside the window, both ends inclusive.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}
