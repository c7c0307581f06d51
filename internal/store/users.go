package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fixadd/BilgiislemTool/internal/model"
)

// CreateUser creates a user. Ledger holder names resolve against this
// table at read time, so renaming a user retroactively changes how
// history displays.
func CreateUser(ctx context.Context, db *sql.DB, username, firstName, lastName, email, passwordHash string, isAdmin bool) (*model.User, error) {
	result, err := db.ExecContext(ctx,
		`INSERT INTO users (username, first_name, last_name, email, password_hash, is_admin)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		username, firstName, lastName, email, passwordHash, isAdmin,
	)
	if err != nil {
		return nil, fmt.Errorf("creating user: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting user id: %w", err)
	}
	return GetUser(ctx, db, id)
}

// GetUser returns a user by id, or nil when absent.
func GetUser(ctx context.Context, db *sql.DB, id int64) (*model.User, error) {
	u := &model.User{}
	err := db.QueryRowContext(ctx,
		`SELECT id, username, first_name, last_name, email, password_hash, is_admin, created_at
		 FROM users WHERE id = ?`, id,
	).Scan(&u.ID, &u.Username, &u.FirstName, &u.LastName, &u.Email,
		&u.PasswordHash, &u.IsAdmin, &u.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting user: %w", err)
	}
	return u, nil
}

// ListUsers returns all users.
func ListUsers(ctx context.Context, db *sql.DB) ([]model.User, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, username, first_name, last_name, email, password_hash, is_admin, created_at
		 FROM users ORDER BY username`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Username, &u.FirstName, &u.LastName, &u.Email,
			&u.PasswordHash, &u.IsAdmin, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning user: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// CreateLookupItem creates a dropdown value, such as a location name.
func CreateLookupItem(ctx context.Context, db *sql.DB, itemType, name string) (*model.LookupItem, error) {
	result, err := db.ExecContext(ctx,
		`INSERT INTO lookup_items (type, name) VALUES (?, ?)`,
		itemType, name,
	)
	if err != nil {
		return nil, fmt.Errorf("creating lookup item: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting lookup item id: %w", err)
	}
	return &model.LookupItem{ID: id, Type: itemType, Name: name}, nil
}

// ListLookupItems returns lookup values, optionally filtered by type.
func ListLookupItems(ctx context.Context, db *sql.DB, itemType string) ([]model.LookupItem, error) {
	var rows *sql.Rows
	var err error

	if itemType != "" {
		rows, err = db.QueryContext(ctx,
			`SELECT id, type, name FROM lookup_items WHERE type = ? ORDER BY name`, itemType)
	} else {
		rows, err = db.QueryContext(ctx,
			`SELECT id, type, name FROM lookup_items ORDER BY type, name`)
	}
	if err != nil {
		return nil, fmt.Errorf("listing lookup items: %w", err)
	}
	defer rows.Close()

	var items []model.LookupItem
	for rows.Next() {
		var item model.LookupItem
		if err := rows.Scan(&item.ID, &item.Type, &item.Name); err != nil {
			return nil, fmt.Errorf("scanning lookup item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
