package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/fixadd/BilgiislemTool/internal/model"
)

// defaultPageSize bounds ledger and activity queries when the caller does
// not supply a limit.
const defaultPageSize = 200

// AppendEvent validates and durably appends a ledger event, returning its
// id. The server stamps the change date when the caller leaves it zero.
// There is no update or delete counterpart; corrections are made by
// appending a compensating event.
func AppendEvent(ctx context.Context, db *sql.DB, ev *model.LedgerEvent) (int64, error) {
	if err := validateEvent(ev); err != nil {
		return 0, err
	}
	return appendEvent(ctx, db, ev)
}

// validateEvent checks the category and the action-specific field pairing.
func validateEvent(ev *model.LedgerEvent) error {
	if !model.ValidCategory(ev.Category) {
		return fmt.Errorf("unknown category %q: %w", ev.Category, model.ErrValidation)
	}
	if ev.ItemID <= 0 {
		return fmt.Errorf("item id is required: %w", model.ErrValidation)
	}

	switch ev.Action {
	case model.ActionAssign:
		if ev.NewHolderID == nil {
			return fmt.Errorf("assign requires new_holder_id: %w", model.ErrValidation)
		}
	case model.ActionReturn:
		if ev.OldHolderID == nil {
			return fmt.Errorf("return requires old_holder_id: %w", model.ErrValidation)
		}
		if ev.NewHolderID != nil {
			return fmt.Errorf("return must not set new_holder_id: %w", model.ErrValidation)
		}
	case model.ActionMove:
		if ev.NewLocation == "" {
			return fmt.Errorf("move requires new_location: %w", model.ErrValidation)
		}
	case model.ActionRelabel:
		if ev.OldLabel == "" || ev.NewLabel == "" {
			return fmt.Errorf("relabel requires old_label and new_label: %w", model.ErrValidation)
		}
		if ev.OldLabel == ev.NewLabel {
			return fmt.Errorf("relabel labels must differ: %w", model.ErrValidation)
		}
	default:
		return fmt.Errorf("unknown action %q: %w", ev.Action, model.ErrValidation)
	}
	return nil
}

// appendEvent inserts a validated event, inside or outside a transaction.
func appendEvent(ctx context.Context, ex execer, ev *model.LedgerEvent) (int64, error) {
	when := ev.ChangeDate
	if when.IsZero() {
		when = time.Now()
		ev.ChangeDate = when
	}

	result, err := ex.ExecContext(ctx,
		`INSERT INTO inventory_logs
		 (category, item_id, action, old_holder_id, new_holder_id,
		  old_location, new_location, old_label, new_label, note, actor_id, change_date)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		ev.Category, ev.ItemID, ev.Action, ev.OldHolderID, ev.NewHolderID,
		nullStr(ev.OldLocation), nullStr(ev.NewLocation),
		nullStr(ev.OldLabel), nullStr(ev.NewLabel),
		ev.Note, ev.ActorID, sqlTime(when),
	)
	if err != nil {
		return 0, fmt.Errorf("appending event: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting event id: %w", err)
	}
	return id, nil
}

// LatestFor returns the resolved current state of one item, or nil when
// the item has no events at all. Absence means "unassigned/unknown", not
// an error.
func LatestFor(ctx context.Context, db *sql.DB, category string, itemID int64) (*model.LatestState, error) {
	if !model.ValidCategory(category) {
		return nil, fmt.Errorf("unknown category %q: %w", category, model.ErrValidation)
	}

	s := &model.LatestState{}
	var holderName, location, label sql.NullString
	err := db.QueryRowContext(ctx,
		latestSelect+` WHERE v.category = ? AND v.item_id = ?`,
		category, itemID,
	).Scan(&s.EventID, &s.Category, &s.ItemID, &s.Action, &s.HolderID,
		&location, &label, &s.ChangeDate, &holderName)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("resolving latest state: %w", err)
	}
	s.HolderName = holderName.String
	s.Location = location.String
	s.Label = label.String
	return s, nil
}

// LatestFilter narrows LatestAll results. Zero values impose no constraint.
type LatestFilter struct {
	Category string
	HolderID int64
	Limit    int
	Offset   int
}

// latestSelect reads the inventory_latest view, which keeps one row per
// (category, item_id): the event winning (change_date DESC, id DESC).
const latestSelect = `
	SELECT v.id, v.category, v.item_id, v.action, v.new_holder_id,
	       COALESCE(lo.name, v.new_location) AS location,
	       v.new_label, v.change_date,
	       COALESCE(NULLIF(TRIM(u.first_name || ' ' || u.last_name), ''),
	                CAST(v.new_holder_id AS TEXT)) AS holder_name
	FROM inventory_latest v
	LEFT JOIN users u ON u.id = v.new_holder_id
	LEFT JOIN lookup_items lo ON lo.id = CAST(v.new_location AS INTEGER)`

// LatestAll returns a page of resolved latest states.
func LatestAll(ctx context.Context, db *sql.DB, filter LatestFilter) ([]model.LatestState, error) {
	query := latestSelect + ` WHERE 1=1`
	var args []any

	if filter.Category != "" {
		if !model.ValidCategory(filter.Category) {
			return nil, fmt.Errorf("unknown category %q: %w", filter.Category, model.ErrValidation)
		}
		query += ` AND v.category = ?`
		args = append(args, filter.Category)
	}
	if filter.HolderID > 0 {
		query += ` AND v.new_holder_id = ?`
		args = append(args, filter.HolderID)
	}

	if filter.Limit <= 0 {
		filter.Limit = defaultPageSize
	}
	query += ` ORDER BY v.change_date DESC, v.id DESC LIMIT ? OFFSET ?`
	args = append(args, filter.Limit, filter.Offset)

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing latest states: %w", err)
	}
	defer rows.Close()

	var states []model.LatestState
	for rows.Next() {
		var s model.LatestState
		var holderName, location, label sql.NullString
		if err := rows.Scan(&s.EventID, &s.Category, &s.ItemID, &s.Action, &s.HolderID,
			&location, &label, &s.ChangeDate, &holderName); err != nil {
			return nil, fmt.Errorf("scanning latest state: %w", err)
		}
		s.HolderName = holderName.String
		s.Location = location.String
		s.Label = label.String
		states = append(states, s)
	}
	return states, rows.Err()
}

// LedgerFilter narrows QueryLedger results. Zero values impose no
// constraint; set filters are AND-ed together.
type LedgerFilter struct {
	Category string
	ItemID   int64
	HolderID int64
	Limit    int
	Offset   int
}

// QueryLedger returns full, undeduplicated event history, newest first.
// Holder and location names resolve at read time; an orphaned reference
// falls back to the raw stored value instead of failing the query.
func QueryLedger(ctx context.Context, db *sql.DB, filter LedgerFilter) ([]model.LedgerEvent, error) {
	query := `
		SELECT l.id, l.category, l.item_id, l.action,
		       l.old_holder_id, l.new_holder_id,
		       l.old_location, l.new_location, l.old_label, l.new_label,
		       l.note, l.actor_id, l.change_date,
		       COALESCE(NULLIF(TRIM(uo.first_name || ' ' || uo.last_name), ''),
		                CAST(l.old_holder_id AS TEXT)) AS old_holder_name,
		       COALESCE(NULLIF(TRIM(un.first_name || ' ' || un.last_name), ''),
		                CAST(l.new_holder_id AS TEXT)) AS new_holder_name,
		       COALESCE(lo.name, l.old_location) AS old_location_name,
		       COALESCE(ln.name, l.new_location) AS new_location_name
		FROM inventory_logs l
		LEFT JOIN users uo ON uo.id = l.old_holder_id
		LEFT JOIN users un ON un.id = l.new_holder_id
		LEFT JOIN lookup_items lo ON lo.id = CAST(l.old_location AS INTEGER)
		LEFT JOIN lookup_items ln ON ln.id = CAST(l.new_location AS INTEGER)
		WHERE 1=1`
	var args []any

	if filter.Category != "" {
		if !model.ValidCategory(filter.Category) {
			return nil, fmt.Errorf("unknown category %q: %w", filter.Category, model.ErrValidation)
		}
		query += ` AND l.category = ?`
		args = append(args, filter.Category)
	}
	if filter.ItemID > 0 {
		query += ` AND l.item_id = ?`
		args = append(args, filter.ItemID)
	}
	if filter.HolderID > 0 {
		query += ` AND (l.old_holder_id = ? OR l.new_holder_id = ?)`
		args = append(args, filter.HolderID, filter.HolderID)
	}

	if filter.Limit <= 0 {
		filter.Limit = defaultPageSize
	}
	query += ` ORDER BY l.change_date DESC, l.id DESC LIMIT ? OFFSET ?`
	args = append(args, filter.Limit, filter.Offset)

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying ledger: %w", err)
	}
	defer rows.Close()

	var events []model.LedgerEvent
	for rows.Next() {
		var ev model.LedgerEvent
		var oldLoc, newLoc, oldLabel, newLabel sql.NullString
		var oldName, newName, oldLocName, newLocName sql.NullString
		if err := rows.Scan(&ev.ID, &ev.Category, &ev.ItemID, &ev.Action,
			&ev.OldHolderID, &ev.NewHolderID,
			&oldLoc, &newLoc, &oldLabel, &newLabel,
			&ev.Note, &ev.ActorID, &ev.ChangeDate,
			&oldName, &newName, &oldLocName, &newLocName); err != nil {
			return nil, fmt.Errorf("scanning event: %w", err)
		}
		ev.OldLocation = oldLoc.String
		ev.NewLocation = newLoc.String
		ev.OldLabel = oldLabel.String
		ev.NewLabel = newLabel.String
		ev.OldHolderName = oldName.String
		ev.NewHolderName = newName.String
		ev.OldLocationName = oldLocName.String
		ev.NewLocationName = newLocName.String
		events = append(events, ev)
	}
	return events, rows.Err()
}
