package db

import (
	_ "embed"
	"fmt"
)

//go:embed migrations/01_create_tasks.up.sql
var createTasksUp string

// Migrate applies the journal schema. Safe to run on every start.
func (db *DB) Migrate() error {
	db.log.Debug("running production journal migrations")

	if _, err := db.conn.Exec(createTasksUp); err != nil {
		return fmt.Errorf("apply tasks migration: %w", err)
	}

	db.log.Debug("production journal migrations finished")
	return nil
}
