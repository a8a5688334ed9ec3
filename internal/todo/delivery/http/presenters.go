package http

import (
	"encoding/json"
	"strings"
	"time"

	"smart-todo/internal/model"
	"smart-todo/internal/todo"
	"smart-todo/internal/todo/view"
	"smart-todo/pkg/datemath"
)

// nullableString tells an absent field from an explicit null.
type nullableString struct {
	Set   bool
	Value *string
}

func (n *nullableString) UnmarshalJSON(b []byte) error {
	n.Set = true
	if string(b) == "null" {
		n.Value = nil
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	n.Value = &s
	return nil
}

// --- Request DTOs ---

type createReq struct {
	Title       string   `json:"title"       binding:"required,max=200"`
	Description string   `json:"description" binding:"max=2000"`
	DueDate     *string  `json:"due_date"`
	Priority    string   `json:"priority"    binding:"omitempty,oneof=high medium low"`
	Category    []string `json:"category"`
}

func (r createReq) toInput(parser *datemath.Parser) (todo.CreateInput, error) {
	in := todo.CreateInput{
		Title:       r.Title,
		Description: r.Description,
		Priority:    model.Priority(r.Priority),
		Categories:  r.Category,
	}
	if r.DueDate != nil && strings.TrimSpace(*r.DueDate) != "" {
		due, err := parser.ParseTimestamp(*r.DueDate)
		if err != nil {
			return in, err
		}
		in.DueAt = &due
	}
	return in, nil
}

// ---

type listReq struct {
	Search   string `form:"search"`
	Status   string `form:"status"`
	Priority string `form:"priority"`
	Sort     string `form:"sort"`
	Order    string `form:"order"`
}

func (r listReq) toInput() todo.ListInput {
	return todo.ListInput{View: view.DefaultState().
		WithSearch(r.Search).
		WithStatus(view.Status(r.Status)).
		WithPriority(r.Priority).
		WithSort(view.SortKey(r.Sort), view.Direction(r.Order)),
	}
}

// ---

type updateReq struct {
	ID          string         `json:"-"`
	Title       *string        `json:"title"       binding:"omitempty,max=200"`
	Description *string        `json:"description" binding:"omitempty,max=2000"`
	DueDate     nullableString `json:"due_date"`
	Priority    *string        `json:"priority"    binding:"omitempty,oneof=high medium low"`
	Category    *[]string      `json:"category"`
	Completed   *bool          `json:"completed"`
}

func (r updateReq) toInput(parser *datemath.Parser) (todo.UpdateInput, error) {
	in := todo.UpdateInput{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Categories:  r.Category,
		Completed:   r.Completed,
	}
	if r.Priority != nil {
		p := model.Priority(*r.Priority)
		in.Priority = &p
	}
	if r.DueDate.Set {
		if r.DueDate.Value == nil || strings.TrimSpace(*r.DueDate.Value) == "" {
			in.ClearDue = true
		} else {
			due, err := parser.ParseTimestamp(*r.DueDate.Value)
			if err != nil {
				return in, err
			}
			in.DueAt = &due
		}
	}
	return in, nil
}

// --- Response DTOs ---

type taskResp struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	CreatedDate string   `json:"created_date"`
	DueDate     *string  `json:"due_date"`
	Priority    string   `json:"priority"`
	Category    []string `json:"category"`
	Completed   bool     `json:"completed"`
	CompletedAt *string  `json:"completed_at"`
}

func (h *handler) formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.In(h.parser.Location()).Format(time.RFC3339)
	return &s
}

func (h *handler) newTaskResp(t model.Task) taskResp {
	categories := t.Categories
	if categories == nil {
		categories = []string{}
	}
	return taskResp{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		CreatedDate: t.CreatedAt.In(h.parser.Location()).Format(time.RFC3339),
		DueDate:     h.formatTime(t.DueAt),
		Priority:    string(t.Priority),
		Category:    categories,
		Completed:   t.Completed,
		CompletedAt: h.formatTime(t.CompletedAt),
	}
}

type listResp struct {
	Tasks []taskResp `json:"tasks"`
	Total int        `json:"total"`
	Shown int        `json:"shown"`
}

func (h *handler) newListResp(out todo.ListOutput) listResp {
	tasks := make([]taskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = h.newTaskResp(t)
	}
	return listResp{Tasks: tasks, Total: out.Total, Shown: len(tasks)}
}
