package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fixadd/BilgiislemTool/internal/model"
)

// logAction appends an activity entry, inside or outside a transaction.
func logAction(ctx context.Context, ex execer, actor, action string) error {
	if _, err := ex.ExecContext(ctx,
		`INSERT INTO activity_log (actor, action) VALUES (?, ?)`,
		actor, action,
	); err != nil {
		return fmt.Errorf("recording activity: %w", err)
	}
	return nil
}

// LogAction appends a coarse diagnostic entry of who did what.
func LogAction(ctx context.Context, db *sql.DB, actor, action string) error {
	return logAction(ctx, db, actor, action)
}

// QueryActivity returns a page of activity entries, newest first,
// optionally filtered by actor.
func QueryActivity(ctx context.Context, db *sql.DB, actor string, limit, offset int) ([]model.ActivityEntry, error) {
	query := `SELECT id, actor, action, created_at FROM activity_log WHERE 1=1`
	var args []any

	if actor != "" {
		query += ` AND actor = ?`
		args = append(args, actor)
	}

	if limit <= 0 {
		limit = defaultPageSize
	}
	query += ` ORDER BY created_at DESC, id DESC LIMIT ? OFFSET ?`
	args = append(args, limit, offset)

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying activity: %w", err)
	}
	defer rows.Close()

	var entries []model.ActivityEntry
	for rows.Next() {
		var e model.ActivityEntry
		if err := rows.Scan(&e.ID, &e.Actor, &e.Action, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning activity entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
