package usecase

import (
	"fmt"
	"strings"

	"smart-todo/internal/analysis/stats"
	"smart-todo/pkg/datemath"
)

const narrateSystemPrompt = `You are a productivity coach. You receive statistics about one user's to-do list and
write a short analysis in Korean.

Answer with one JSON object and nothing else:
{
  "summary": "2-3 sentence overview",
  "urgentTasks": ["up to 5 task titles that need attention now"],
  "insights": ["3 to 5 observations grounded in the numbers"],
  "recommendations": ["3 to 4 concrete, actionable suggestions"]
}`

func periodName(p datemath.Period) string {
	if p == datemath.PeriodWeek {
		return "this week"
	}
	return "today"
}

// buildNarratePrompt lays out every aggregate the narrative may refer to.
func buildNarratePrompt(period datemath.Period, s stats.Snapshot) string {
	var b strings.Builder

	fmt.Fprintf(&b, "PERIOD: %s\n\n", periodName(period))
	fmt.Fprintf(&b, "OVERALL: %d tasks, %d completed (%.1f%%)\n", s.Total, s.Completed, s.CompletionRate)

	b.WriteString("\nBY PRIORITY:\n")
	for _, p := range s.ByPriority {
		fmt.Fprintf(&b, "- %s: %d/%d (%.1f%%)\n", p.Label, p.Completed, p.Total, p.Rate.Rate)
	}

	b.WriteString("\nBY CATEGORY:\n")
	for _, c := range s.ByCategory {
		fmt.Fprintf(&b, "- %s: %d/%d (%.1f%%)\n", c.Category, c.Completed, c.Total, c.Rate.Rate)
	}

	fmt.Fprintf(&b, "\nDEADLINES: %d with due date, %d overdue, %d completed on time, compliance %.1f%%\n",
		s.Deadline.WithDueDate, s.Deadline.Overdue, s.Deadline.CompletedOnTime, s.Deadline.ComplianceRate)

	fmt.Fprintf(&b, "OPEN TASK LOAD BY DUE TIME: morning %d, afternoon %d, evening %d, other %d\n",
		s.TimeOfDayLoad.Morning, s.TimeOfDayLoad.Afternoon, s.TimeOfDayLoad.Evening, s.TimeOfDayLoad.Other)

	b.WriteString("\nCOMPLETION BY WEEKDAY CREATED:\n")
	for _, d := range s.ByWeekday {
		if d.Total > 0 {
			fmt.Fprintf(&b, "- %s: %d/%d\n", d.Label, d.Completed, d.Total)
		}
	}
	fmt.Fprintf(&b, "MOST PRODUCTIVE DAY: %s\n", orNone(s.MostProductiveDay))

	b.WriteString("\nCOMPLETION BY TIME CREATED:\n")
	for _, h := range s.ByHour {
		if h.Total > 0 {
			fmt.Fprintf(&b, "- %s: %d/%d\n", h.Label, h.Completed, h.Total)
		}
	}
	fmt.Fprintf(&b, "MOST PRODUCTIVE TIME: %s\n", orNone(s.MostProductiveTime))

	fmt.Fprintf(&b, "\nMOST POSTPONED: categories %s; priorities %s\n", counts(s.Postponed.ByCategory), counts(s.Postponed.ByPriority))
	fmt.Fprintf(&b, "MOST COMPLETED: categories %s; priorities %s\n", counts(s.Finished.ByCategory), counts(s.Finished.ByPriority))

	b.WriteString("\nURGENT TASKS:\n")
	if len(s.Urgent) == 0 {
		b.WriteString("- none\n")
	}
	for _, u := range s.Urgent {
		due := "no due date"
		if u.DueAt != nil {
			due = "due " + u.DueAt.Format("2006-01-02 15:04")
		}
		fmt.Fprintf(&b, "- %s (priority %s, %s)\n", u.Title, u.Priority.Bucket(), due)
	}

	return b.String()
}

func counts(cs []stats.Count) string {
	if len(cs) == 0 {
		return "none"
	}
	parts := make([]string, len(cs))
	for i, c := range cs {
		parts[i] = fmt.Sprintf("%s=%d", c.Label, c.Count)
	}
	return strings.Join(parts, ", ")
}

func orNone(s string) string {
	if s == "" {
		return "none"
	}
	return s
}
