package gcalendar

import "context"

// Calendar inserts and removes events on a Google calendar.
type Calendar interface {
	InsertEvent(ctx context.Context, in EventInput) (Event, error)
	DeleteEvent(ctx context.Context, calendarID, eventID string) error
}
