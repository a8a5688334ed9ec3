// Package sqlite opens the gorm connection backing the task store.
package sqlite

import (
	"fmt"

	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// MemoryPath opens a private in-memory database.
const MemoryPath = ":memory:"

// Connect opens the SQLite database at path and migrates the given models.
// SQLite allows a single writer, so the pool is capped at one connection;
// this also keeps an in-memory database alive across calls.
func Connect(path string, models ...any) (*gorm.DB, error) {
	db, err := gorm.Open(gormsqlite.Open(dsn(path)), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("sqlite.Connect open %q: %w", path, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("sqlite.Connect: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if len(models) > 0 {
		if err := db.AutoMigrate(models...); err != nil {
			return nil, fmt.Errorf("sqlite.Connect migrate: %w", err)
		}
	}
	return db, nil
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func dsn(path string) string {
	if path == MemoryPath {
		return path
	}
	return path + "?_busy_timeout=5000&_foreign_keys=on"
}
