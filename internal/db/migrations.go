package db

import (
	"database/sql"
	"fmt"
)

// migrations is a list of SQL statements applied in order after schema
// creation. Each migration must be idempotent. Append new migrations at
// the end.
var migrations = []string{
	// Migration 1: Rebuild the latest-state view so that two events with
	// the same change_date resolve by id, not by insertion luck. The
	// (change_date DESC, id DESC) ordering here is the single definition
	// of the tie-break rule; queries read the view instead of repeating it.
	`DROP VIEW IF EXISTS inventory_latest`,
	`CREATE VIEW inventory_latest AS
	 SELECT id, category, item_id, action, old_holder_id, new_holder_id,
	        old_location, new_location, old_label, new_label, note, actor_id, change_date
	 FROM (
	     SELECT l.*, ROW_NUMBER() OVER (
	         PARTITION BY category, item_id
	         ORDER BY change_date DESC, id DESC
	     ) AS rn
	     FROM inventory_logs l
	 )
	 WHERE rn = 1`,
}

// EnsureSchema creates all tables, indexes and views if they don't
// already exist.
func EnsureSchema(db *sql.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}

// Migrate runs the database schema migrations.
func Migrate(db *sql.DB) error {
	if err := EnsureSchema(db); err != nil {
		return err
	}

	for i, m := range migrations {
		if _, err := db.Exec(m); err != nil {
			return fmt.Errorf("running migration %d: %w", i+1, err)
		}
	}

	return nil
}
