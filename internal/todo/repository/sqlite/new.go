package sqlite

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"smart-todo/internal/todo/repository"
	"smart-todo/pkg/log"
)

type implRepository struct {
	db    *gorm.DB
	l     log.Logger
	clock func() time.Time
	newID func() string
}

// New creates a gorm-backed Repository for the todo domain. The tasks table
// must have been migrated with Models().
func New(db *gorm.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("todo/repository/sqlite: db is required")
	}
	return &implRepository{
		db:    db,
		l:     l,
		clock: time.Now,
		newID: newUUID,
	}
}

// Models lists the tables this repository needs migrated.
func Models() []any {
	return []any{&taskRow{}}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("todo/repository/sqlite.%s", method)
}
