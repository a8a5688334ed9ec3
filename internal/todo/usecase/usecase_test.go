package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"smart-todo/internal/model"
	"smart-todo/internal/todo"
	repo "smart-todo/internal/todo/repository"
	"smart-todo/internal/todo/view"
	"smart-todo/pkg/gcalendar"
)

type mockLogger struct{ warnings int }

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   { m.warnings++ }
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// mockRepository keeps tasks in insertion order and lists them newest first.
type mockRepository struct {
	tasks []model.Task
	seq   int
}

func (m *mockRepository) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (model.Task, error) {
	m.seq++
	t := model.Task{
		ID:          fmt.Sprintf("t%d", m.seq),
		OwnerID:     opt.OwnerID,
		Title:       opt.Title,
		Description: opt.Description,
		CreatedAt:   time.Date(2024, 5, 1, 0, m.seq, 0, 0, time.UTC),
		DueAt:       opt.DueAt,
		Priority:    opt.Priority,
		Categories:  model.UniqueStrings(opt.Categories),
	}
	m.tasks = append(m.tasks, t)
	return t, nil
}

func (m *mockRepository) find(id, owner string) int {
	for i, t := range m.tasks {
		if t.ID == id && t.OwnerID == owner {
			return i
		}
	}
	return -1
}

func (m *mockRepository) GetOneTask(ctx context.Context, opt repo.GetOneTaskOptions) (model.Task, error) {
	i := m.find(opt.ID, opt.OwnerID)
	if i < 0 {
		return model.Task{}, repo.ErrNotFound
	}
	return m.tasks[i], nil
}

func (m *mockRepository) ListTasks(ctx context.Context, ownerID string) ([]model.Task, error) {
	var out []model.Task
	for i := len(m.tasks) - 1; i >= 0; i-- {
		if m.tasks[i].OwnerID == ownerID {
			out = append(out, m.tasks[i])
		}
	}
	return out, nil
}

func (m *mockRepository) UpdateTask(ctx context.Context, opt repo.UpdateTaskOptions) (model.Task, error) {
	i := m.find(opt.ID, opt.OwnerID)
	if i < 0 {
		return model.Task{}, repo.ErrNotFound
	}
	t := &m.tasks[i]
	if opt.Title != nil {
		t.Title = *opt.Title
	}
	if opt.Priority != nil {
		t.Priority = *opt.Priority
	}
	if opt.Completed != nil {
		t.Completed = *opt.Completed
	}
	if opt.CalendarEventID != nil {
		t.CalendarEventID = *opt.CalendarEventID
	}
	return *t, nil
}

func (m *mockRepository) DeleteTask(ctx context.Context, opt repo.DeleteTaskOptions) error {
	i := m.find(opt.ID, opt.OwnerID)
	if i < 0 {
		return repo.ErrNotFound
	}
	m.tasks = append(m.tasks[:i], m.tasks[i+1:]...)
	return nil
}

type mockCalendar struct {
	err        error
	scheduled  []string
	unschedule []string
}

func (m *mockCalendar) Schedule(ctx context.Context, task model.Task) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	m.scheduled = append(m.scheduled, task.ID)
	return "evt-" + task.ID, nil
}

func (m *mockCalendar) Unschedule(ctx context.Context, eventID string) error {
	m.unschedule = append(m.unschedule, eventID)
	return m.err
}

var owner = model.Scope{UserID: "u1"}

func TestCreate_Validation(t *testing.T) {
	uc := New(&mockLogger{}, &mockRepository{}, nil)

	tests := []struct {
		name  string
		input todo.CreateInput
		want  error
	}{
		{"blank title", todo.CreateInput{Title: "   "}, todo.ErrEmptyTitle},
		{"bad priority", todo.CreateInput{Title: "a", Priority: "urgent"}, todo.ErrInvalidPriority},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := uc.Create(context.Background(), owner, tt.input); !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestCreate_CalendarSync(t *testing.T) {
	due := time.Date(2024, 5, 2, 6, 0, 0, 0, time.UTC)

	t.Run("scheduled when due is set", func(t *testing.T) {
		cal := &mockCalendar{}
		uc := New(&mockLogger{}, &mockRepository{}, cal)

		out, err := uc.Create(context.Background(), owner, todo.CreateInput{Title: "회의", DueAt: &due})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if out.Task.CalendarEventID != "evt-t1" {
			t.Errorf("event id = %q", out.Task.CalendarEventID)
		}
	})

	t.Run("skipped without due", func(t *testing.T) {
		cal := &mockCalendar{}
		uc := New(&mockLogger{}, &mockRepository{}, cal)

		uc.Create(context.Background(), owner, todo.CreateInput{Title: "메모"})
		if len(cal.scheduled) != 0 {
			t.Errorf("unexpected schedule: %v", cal.scheduled)
		}
	})

	t.Run("failure is not fatal", func(t *testing.T) {
		l := &mockLogger{}
		uc := New(l, &mockRepository{}, &mockCalendar{err: errors.New("calendar down")})

		out, err := uc.Create(context.Background(), owner, todo.CreateInput{Title: "회의", DueAt: &due})
		if err != nil {
			t.Fatalf("Create should succeed, got %v", err)
		}
		if out.Task.ID == "" || out.Task.CalendarEventID != "" {
			t.Errorf("unexpected task: %+v", out.Task)
		}
		if l.warnings == 0 {
			t.Error("expected a warning to be logged")
		}
	})
}

func TestList(t *testing.T) {
	r := &mockRepository{}
	uc := New(&mockLogger{}, r, nil)
	ctx := context.Background()

	uc.Create(ctx, owner, todo.CreateInput{Title: "A", Priority: model.PriorityHigh})
	uc.Create(ctx, owner, todo.CreateInput{Title: "B", Priority: model.PriorityLow})
	uc.Create(ctx, model.Scope{UserID: "u2"}, todo.CreateInput{Title: "C"})

	out, err := uc.List(ctx, owner, todo.ListInput{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if out.Total != 2 || len(out.Tasks) != 2 || out.Tasks[0].Title != "B" {
		t.Errorf("default view should be newest first: %+v", out)
	}

	out, _ = uc.List(ctx, owner, todo.ListInput{View: view.State{Priority: "high"}})
	if len(out.Tasks) != 1 || out.Tasks[0].Title != "A" || out.Total != 2 {
		t.Errorf("priority filter: %+v", out)
	}

	if _, err := uc.List(ctx, owner, todo.ListInput{View: view.State{Status: "done"}}); !errors.Is(err, view.ErrInvalidState) {
		t.Errorf("invalid status: err = %v", err)
	}
}

func TestToggleAndUpdate(t *testing.T) {
	r := &mockRepository{}
	uc := New(&mockLogger{}, r, nil)
	ctx := context.Background()

	created, _ := uc.Create(ctx, owner, todo.CreateInput{Title: "A"})

	out, err := uc.Toggle(ctx, owner, created.Task.ID)
	if err != nil || !out.Task.Completed {
		t.Fatalf("first toggle: %+v, %v", out.Task, err)
	}
	out, _ = uc.Toggle(ctx, owner, created.Task.ID)
	if out.Task.Completed {
		t.Error("second toggle should reopen the task")
	}

	if _, err := uc.Toggle(ctx, model.Scope{UserID: "u2"}, created.Task.ID); !errors.Is(err, todo.ErrTaskNotFound) {
		t.Errorf("other owner toggle: err = %v", err)
	}

	blank := " "
	if _, err := uc.Update(ctx, owner, todo.UpdateInput{ID: created.Task.ID, Title: &blank}); !errors.Is(err, todo.ErrEmptyTitle) {
		t.Errorf("blank title: err = %v", err)
	}

	unset := model.PriorityNone
	updated, err := uc.Update(ctx, owner, todo.UpdateInput{ID: created.Task.ID, Priority: &unset})
	if err != nil || updated.Task.Priority != model.PriorityNone {
		t.Errorf("clearing priority: %+v, %v", updated.Task, err)
	}

	if _, err := uc.Update(ctx, owner, todo.UpdateInput{ID: "missing"}); !errors.Is(err, todo.ErrTaskNotFound) {
		t.Errorf("missing: err = %v", err)
	}
}

func TestDelete(t *testing.T) {
	due := time.Date(2024, 5, 2, 6, 0, 0, 0, time.UTC)
	r := &mockRepository{}
	cal := &mockCalendar{}
	uc := New(&mockLogger{}, r, cal)
	ctx := context.Background()

	created, _ := uc.Create(ctx, owner, todo.CreateInput{Title: "A", DueAt: &due})

	if err := uc.Delete(ctx, model.Scope{UserID: "u2"}, created.Task.ID); !errors.Is(err, todo.ErrTaskNotFound) {
		t.Errorf("other owner: err = %v", err)
	}
	if err := uc.Delete(ctx, owner, created.Task.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if len(cal.unschedule) != 1 || cal.unschedule[0] != "evt-t1" {
		t.Errorf("unschedule = %v", cal.unschedule)
	}
	if len(r.tasks) != 0 {
		t.Errorf("task not removed")
	}
}

type fakeCalendarAPI struct {
	got gcalendar.EventInput
}

func (f *fakeCalendarAPI) InsertEvent(ctx context.Context, in gcalendar.EventInput) (gcalendar.Event, error) {
	f.got = in
	return gcalendar.Event{ID: "evt"}, nil
}

func (f *fakeCalendarAPI) DeleteEvent(ctx context.Context, calendarID, eventID string) error {
	return nil
}

func TestCalendarSync_Schedule(t *testing.T) {
	loc, _ := time.LoadLocation("Asia/Seoul")
	api := &fakeCalendarAPI{}
	sync := NewCalendarSync(api, "work", loc)

	due := time.Date(2024, 5, 2, 6, 0, 0, 0, time.UTC)
	id, err := sync.Schedule(context.Background(), model.Task{ID: "t1", Title: "회의", DueAt: &due})
	if err != nil || id != "evt" {
		t.Fatalf("Schedule: %q, %v", id, err)
	}
	if api.got.CalendarID != "work" || api.got.TimeZone != "Asia/Seoul" {
		t.Errorf("unexpected input: %+v", api.got)
	}
	if api.got.Start.Hour() != 15 || api.got.End.Sub(api.got.Start) != time.Hour {
		t.Errorf("unexpected event span: %v - %v", api.got.Start, api.got.End)
	}
}
