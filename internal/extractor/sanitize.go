package extractor

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"smart-todo/internal/model"
)

const (
	maxTitleLength      = 200
	fallbackTitleLength = 100
	shortTitleLength    = 50
	placeholderTitle    = "할 일"
	defaultCategory     = "개인"
	ellipsis            = "..."

	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02T15:04:05"
	defaultDueHour = 9
)

var dueDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}(T\d{2}:\d{2}:\d{2})?$`)

// Sanitize clamps and defaults a candidate. input is the normalized text the
// candidate came from; now decides which due dates are too old.
func Sanitize(c Candidate, input string, now time.Time) Task {
	priority := model.Priority(strings.ToLower(strings.TrimSpace(c.Priority)))
	if !priority.Valid() {
		priority = model.PriorityMedium
	}

	categories := model.UniqueStrings(c.Categories)
	if len(categories) == 0 {
		categories = []string{defaultCategory}
	}

	return Task{
		Title:       sanitizeTitle(c.Title, input),
		Description: strings.TrimSpace(c.Description),
		DueAt:       sanitizeDue(c.DueDate, now),
		Priority:    priority,
		Categories:  categories,
	}
}

func sanitizeTitle(title, input string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		title = truncate(input, fallbackTitleLength)
	}
	if utf8.RuneCountInString(title) < 2 {
		title = placeholderTitle
		if input != "" {
			title = truncate(input, shortTitleLength)
		}
	}
	if utf8.RuneCountInString(title) > maxTitleLength {
		title = truncate(title, maxTitleLength-utf8.RuneCountInString(ellipsis)) + ellipsis
	}
	return title
}

// sanitizeDue parses a YYYY-MM-DD[THH:MM:SS] value in now's location.
// Date-only values are due at 09:00. Anything dated before yesterday is dropped.
func sanitizeDue(raw string, now time.Time) *time.Time {
	raw = strings.TrimSpace(raw)
	if !dueDatePattern.MatchString(raw) {
		return nil
	}

	loc := now.Location()
	var due time.Time
	if len(raw) == len(dateLayout) {
		d, err := time.ParseInLocation(dateLayout, raw, loc)
		if err != nil {
			return nil
		}
		due = time.Date(d.Year(), d.Month(), d.Day(), defaultDueHour, 0, 0, 0, loc)
	} else {
		d, err := time.ParseInLocation(dateTimeLayout, raw, loc)
		if err != nil {
			return nil
		}
		due = d
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	dueDay := time.Date(due.Year(), due.Month(), due.Day(), 0, 0, 0, 0, loc)
	if dueDay.Before(today.AddDate(0, 0, -1)) {
		return nil
	}
	return &due
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
