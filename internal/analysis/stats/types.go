package stats

import (
	"time"

	"smart-todo/internal/model"
)

// Bucket labels.
const (
	LabelMorning   = "morning"
	LabelAfternoon = "afternoon"
	LabelEvening   = "evening"
	LabelOther     = "other"
	LabelDawn      = "dawn"
)

// Rate is a completed/total share expressed in percent.
type Rate struct {
	Total     int     `json:"total"`
	Completed int     `json:"completed"`
	Rate      float64 `json:"rate"`
}

// CategoryRate is the completion breakdown of one category label.
type CategoryRate struct {
	Category string `json:"category"`
	Rate
}

// Deadline summarizes how tasks with a due timestamp fared.
type Deadline struct {
	WithDueDate     int     `json:"with_due_date"`
	Overdue         int     `json:"overdue"`
	CompletedOnTime int     `json:"completed_on_time"`
	ComplianceRate  float64 `json:"compliance_rate"`
}

// Load counts open tasks by the time of day they are due.
type Load struct {
	Morning   int `json:"morning"`
	Afternoon int `json:"afternoon"`
	Evening   int `json:"evening"`
	Other     int `json:"other"`
}

// Productivity is a created/completed tally for one day or time-of-day label.
type Productivity struct {
	Label string `json:"label"`
	Rate
}

// Count is one entry of a ranking.
type Count struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// Pattern tallies tasks by category and by priority bucket. Both slices are
// ranked by count, highest first; ties keep first-seen order.
type Pattern struct {
	ByCategory []Count `json:"by_category"`
	ByPriority []Count `json:"by_priority"`
}

// Urgent is a shortlisted open task.
type Urgent struct {
	ID       string         `json:"id"`
	Title    string         `json:"title"`
	Priority model.Priority `json:"priority"`
	DueAt    *time.Time     `json:"due_date"`
}

// Snapshot holds every aggregate computed over a task subset at one instant.
type Snapshot struct {
	Total          int            `json:"total"`
	Completed      int            `json:"completed"`
	CompletionRate float64        `json:"completion_rate"`
	ByPriority     []Productivity `json:"by_priority"`
	ByCategory     []CategoryRate `json:"by_category"`
	Deadline       Deadline       `json:"deadline"`
	TimeOfDayLoad  Load           `json:"time_of_day_load"`

	ByWeekday          []Productivity `json:"by_weekday"`
	MostProductiveDay  string         `json:"most_productive_day"`
	ByHour             []Productivity `json:"by_hour"`
	MostProductiveTime string         `json:"most_productive_time"`

	Postponed Pattern  `json:"postponed"`
	Finished  Pattern  `json:"finished"`
	Urgent    []Urgent `json:"urgent"`
}
