package usecase

import (
	"context"
	"time"

	"smart-todo/internal/model"
	"smart-todo/internal/todo"
	"smart-todo/pkg/gcalendar"
)

const eventDuration = time.Hour

type calendarSync struct {
	cal        gcalendar.Calendar
	calendarID string
	loc        *time.Location
}

// NewCalendarSync schedules each task as a one-hour event starting at its due
// timestamp, in loc.
func NewCalendarSync(cal gcalendar.Calendar, calendarID string, loc *time.Location) todo.CalendarSync {
	return &calendarSync{cal: cal, calendarID: calendarID, loc: loc}
}

func (s *calendarSync) Schedule(ctx context.Context, task model.Task) (string, error) {
	start := task.DueAt.In(s.loc)
	event, err := s.cal.InsertEvent(ctx, gcalendar.EventInput{
		CalendarID:  s.calendarID,
		Summary:     task.Title,
		Description: task.Description,
		Start:       start,
		End:         start.Add(eventDuration),
		TimeZone:    s.loc.String(),
	})
	if err != nil {
		return "", err
	}
	return event.ID, nil
}

func (s *calendarSync) Unschedule(ctx context.Context, eventID string) error {
	return s.cal.DeleteEvent(ctx, s.calendarID, eventID)
}
