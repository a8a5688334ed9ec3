package gcalendar

import "time"

const defaultCalendarID = "primary"

// EventInput describes a calendar event to insert.
type EventInput struct {
	CalendarID  string
	Summary     string
	Description string
	Start       time.Time
	End         time.Time
	// TimeZone is an IANA name such as "Asia/Seoul". Empty keeps the offset of Start.
	TimeZone string
}

// Event is the part of a created event the caller keeps.
type Event struct {
	ID   string
	Link string
}
