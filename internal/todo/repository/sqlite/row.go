package sqlite

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"smart-todo/internal/model"
)

type taskRow struct {
	ID              string `gorm:"primaryKey"`
	OwnerID         string `gorm:"index;not null"`
	Title           string `gorm:"not null"`
	Description     string
	Priority        string
	Categories      datatypes.JSON
	Completed       bool
	CreatedAt       time.Time `gorm:"index"`
	DueAt           *time.Time
	CompletedAt     *time.Time
	CalendarEventID string
	UpdatedAt       time.Time
}

func (taskRow) TableName() string { return "tasks" }

func newUUID() string { return uuid.NewString() }

func encodeCategories(categories []string) datatypes.JSON {
	b, _ := json.Marshal(model.UniqueStrings(categories))
	return datatypes.JSON(b)
}

func decodeCategories(raw datatypes.JSON) []string {
	var out []string
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &out)
	}
	if out == nil {
		out = []string{}
	}
	return out
}

func utc(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}

func (row taskRow) toModel() model.Task {
	return model.Task{
		ID:              row.ID,
		OwnerID:         row.OwnerID,
		Title:           row.Title,
		Description:     row.Description,
		CreatedAt:       row.CreatedAt,
		DueAt:           row.DueAt,
		Priority:        model.Priority(row.Priority),
		Categories:      decodeCategories(row.Categories),
		Completed:       row.Completed,
		CompletedAt:     row.CompletedAt,
		CalendarEventID: row.CalendarEventID,
	}
}
