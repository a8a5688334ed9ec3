package sqlite

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"smart-todo/internal/model"
	repo "smart-todo/internal/todo/repository"
)

// CreateTask inserts a task, assigning its ID and created timestamp.
func (r *implRepository) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (model.Task, error) {
	row := taskRow{
		ID:          r.newID(),
		OwnerID:     opt.OwnerID,
		Title:       strings.TrimSpace(opt.Title),
		Description: opt.Description,
		Priority:    string(opt.Priority),
		Categories:  encodeCategories(opt.Categories),
		CreatedAt:   r.clock().UTC(),
		DueAt:       utc(opt.DueAt),
	}

	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTask"), err)
		return model.Task{}, repo.ErrFailedToInsert
	}
	return row.toModel(), nil
}

// GetOneTask fetches a task by ID within the owner's scope.
func (r *implRepository) GetOneTask(ctx context.Context, opt repo.GetOneTaskOptions) (model.Task, error) {
	var row taskRow
	err := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", opt.ID, opt.OwnerID).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Task{}, repo.ErrNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneTask"), err)
		return model.Task{}, repo.ErrFailedToGet
	}
	return row.toModel(), nil
}

// ListTasks returns every task of the owner, newest first.
func (r *implRepository) ListTasks(ctx context.Context, ownerID string) ([]model.Task, error) {
	var rows []taskRow
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTasks"), err)
		return nil, repo.ErrFailedToList
	}

	tasks := make([]model.Task, len(rows))
	for i, row := range rows {
		tasks[i] = row.toModel()
	}
	return tasks, nil
}

// UpdateTask applies a partial update inside a transaction. The owner is
// never reassigned.
func (r *implRepository) UpdateTask(ctx context.Context, opt repo.UpdateTaskOptions) (model.Task, error) {
	var row taskRow
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ? AND owner_id = ?", opt.ID, opt.OwnerID).First(&row).Error; err != nil {
			return err
		}
		r.apply(&row, opt)
		return tx.Save(&row).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Task{}, repo.ErrNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateTask"), err)
		return model.Task{}, repo.ErrFailedToUpdate
	}
	return row.toModel(), nil
}

// DeleteTask removes a task within the owner's scope.
func (r *implRepository) DeleteTask(ctx context.Context, opt repo.DeleteTaskOptions) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", opt.ID, opt.OwnerID).
		Delete(&taskRow{})
	if res.Error != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteTask"), res.Error)
		return repo.ErrFailedToDelete
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *implRepository) apply(row *taskRow, opt repo.UpdateTaskOptions) {
	if opt.Title != nil {
		row.Title = strings.TrimSpace(*opt.Title)
	}
	if opt.Description != nil {
		row.Description = *opt.Description
	}
	switch {
	case opt.ClearDue:
		row.DueAt = nil
	case opt.DueAt != nil:
		row.DueAt = utc(opt.DueAt)
	}
	if opt.Priority != nil {
		row.Priority = string(*opt.Priority)
	}
	if opt.Categories != nil {
		row.Categories = encodeCategories(*opt.Categories)
	}
	if opt.Completed != nil && *opt.Completed != row.Completed {
		row.Completed = *opt.Completed
		if row.Completed {
			now := r.clock().UTC()
			row.CompletedAt = &now
		} else {
			row.CompletedAt = nil
		}
	}
	if opt.CalendarEventID != nil {
		row.CalendarEventID = *opt.CalendarEventID
	}
}
