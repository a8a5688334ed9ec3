package gcalendar_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"smart-todo/pkg/gcalendar"
)

func TestNewFromCredentialsFile(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		if _, err := gcalendar.NewFromCredentialsFile(context.Background(), "does-not-exist.json"); err == nil {
			t.Error("expected read error")
		}
	})

	t.Run("not a service account", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "creds.json")
		os.WriteFile(path, []byte(`{"broken":true}`), 0o600)

		if _, err := gcalendar.NewFromCredentialsFile(context.Background(), path); err == nil {
			t.Error("expected parse error")
		}
	})
}

func TestInsertAndDeleteEvent(t *testing.T) {
	var got struct {
		Summary string `json:"summary"`
		Start   struct {
			DateTime string `json:"dateTime"`
			TimeZone string `json:"timeZone"`
		} `json:"start"`
	}
	deleted := false

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/calendars/primary/events":
			json.NewDecoder(r.Body).Decode(&got)
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"id":"evt-1","htmlLink":"https://calendar.example/evt-1"}`))
		case r.Method == http.MethodDelete && r.URL.Path == "/calendars/work/events/evt-1":
			deleted = true
			w.WriteHeader(http.StatusNoContent)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer ts.Close()

	cal, err := gcalendar.NewFromHTTPClient(context.Background(), ts.Client(), ts.URL+"/")
	if err != nil {
		t.Fatalf("NewFromHTTPClient: %v", err)
	}

	kst := time.FixedZone("KST", 9*3600)
	start := time.Date(2024, 5, 2, 15, 0, 0, 0, kst)
	event, err := cal.InsertEvent(context.Background(), gcalendar.EventInput{
		Summary:  "회의",
		Start:    start,
		End:      start.Add(time.Hour),
		TimeZone: "Asia/Seoul",
	})
	if err != nil {
		t.Fatalf("InsertEvent: %v", err)
	}
	if event.ID != "evt-1" || event.Link != "https://calendar.example/evt-1" {
		t.Errorf("unexpected event: %+v", event)
	}
	if got.Summary != "회의" || got.Start.DateTime != "2024-05-02T15:00:00+09:00" || got.Start.TimeZone != "Asia/Seoul" {
		t.Errorf("unexpected request body: %+v", got)
	}

	if err := cal.DeleteEvent(context.Background(), "work", "evt-1"); err != nil {
		t.Fatalf("DeleteEvent: %v", err)
	}
	if !deleted {
		t.Error("delete request not received")
	}

	if err := cal.DeleteEvent(context.Background(), "work", "missing"); err == nil {
		t.Error("expected error for unknown event")
	}
}
