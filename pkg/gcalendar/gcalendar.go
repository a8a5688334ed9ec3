package gcalendar

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

type implCalendar struct {
	service *calendar.Service
}

// NewFromCredentialsFile creates a Calendar authenticated with a service
// account JSON key.
func NewFromCredentialsFile(ctx context.Context, path string) (Calendar, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("gcalendar: read credentials: %w", err)
	}

	jwtConfig, err := google.JWTConfigFromJSON(data, calendar.CalendarEventsScope)
	if err != nil {
		return nil, fmt.Errorf("gcalendar: parse credentials: %w", err)
	}

	svc, err := calendar.NewService(ctx, option.WithTokenSource(jwtConfig.TokenSource(ctx)))
	if err != nil {
		return nil, fmt.Errorf("gcalendar: create service: %w", err)
	}
	return &implCalendar{service: svc}, nil
}

// NewFromHTTPClient creates a Calendar that sends requests through httpClient.
// endpoint overrides the API base URL when not empty.
func NewFromHTTPClient(ctx context.Context, httpClient *http.Client, endpoint string) (Calendar, error) {
	opts := []option.ClientOption{option.WithHTTPClient(httpClient)}
	if endpoint != "" {
		opts = append(opts, option.WithEndpoint(endpoint))
	}

	svc, err := calendar.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("gcalendar: create service: %w", err)
	}
	return &implCalendar{service: svc}, nil
}

func (c *implCalendar) InsertEvent(ctx context.Context, in EventInput) (Event, error) {
	event := &calendar.Event{
		Summary:     in.Summary,
		Description: in.Description,
		Start:       &calendar.EventDateTime{DateTime: in.Start.Format(time.RFC3339), TimeZone: in.TimeZone},
		End:         &calendar.EventDateTime{DateTime: in.End.Format(time.RFC3339), TimeZone: in.TimeZone},
	}

	created, err := c.service.Events.Insert(calendarID(in.CalendarID), event).Context(ctx).Do()
	if err != nil {
		return Event{}, fmt.Errorf("gcalendar: insert event: %w", err)
	}
	return Event{ID: created.Id, Link: created.HtmlLink}, nil
}

func (c *implCalendar) DeleteEvent(ctx context.Context, id, eventID string) error {
	if err := c.service.Events.Delete(calendarID(id), eventID).Context(ctx).Do(); err != nil {
		return fmt.Errorf("gcalendar: delete event: %w", err)
	}
	return nil
}

func calendarID(id string) string {
	if id == "" {
		return defaultCalendarID
	}
	return id
}
