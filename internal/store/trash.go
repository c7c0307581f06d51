package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/fixadd/BilgiislemTool/internal/model"
)

// DefaultRetention is how long soft-deleted records survive before the
// purge removes them for good.
const DefaultRetention = 15 * 24 * time.Hour

// SoftDelete moves an active record into its family's deleted table. The
// copy and the removal happen in one transaction, so the record is never
// in both tables or in neither. Returns ErrNotFound when no active record
// with the id exists.
func SoftDelete(ctx context.Context, db *sql.DB, family Family, id int64, actor string) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	cols := strings.Join(family.Columns, ", ")
	result, err := tx.ExecContext(ctx, fmt.Sprintf(
		`INSERT INTO %s (id, %s, deleted_at)
		 SELECT id, %s, CURRENT_TIMESTAMP FROM %s WHERE id = ?`,
		family.Deleted, cols, cols, family.Active), id)
	if err != nil {
		return fmt.Errorf("copying %s record to trash: %w", family.Category, err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking copied rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%s item %d: %w", family.Category, id, model.ErrNotFound)
	}

	if _, err := tx.ExecContext(ctx, fmt.Sprintf(
		`DELETE FROM %s WHERE id = ?`, family.Active), id); err != nil {
		return fmt.Errorf("removing active %s record: %w", family.Category, err)
	}

	if err := logAction(ctx, tx, actor, fmt.Sprintf("deleted %s item %d", family.Category, id)); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing soft delete: %w", err)
	}
	return nil
}

// Restore moves a soft-deleted record back into its active table. The
// original id is kept when still free; otherwise the record gets a fresh
// id, same as intake. Returns ErrNotFound when the id is not in the trash.
func Restore(ctx context.Context, db *sql.DB, family Family, id int64) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	var inTrash, idTaken int
	err = tx.QueryRowContext(ctx, fmt.Sprintf(
		`SELECT EXISTS(SELECT 1 FROM %s WHERE id = ?),
		        EXISTS(SELECT 1 FROM %s WHERE id = ?)`,
		family.Deleted, family.Active), id, id).Scan(&inTrash, &idTaken)
	if err != nil {
		return fmt.Errorf("checking trash for %s item: %w", family.Category, err)
	}
	if inTrash == 0 {
		return fmt.Errorf("%s item %d not in trash: %w", family.Category, id, model.ErrNotFound)
	}

	cols := strings.Join(family.Columns, ", ")
	if idTaken == 0 {
		_, err = tx.ExecContext(ctx, fmt.Sprintf(
			`INSERT INTO %s (id, %s) SELECT id, %s FROM %s WHERE id = ?`,
			family.Active, cols, cols, family.Deleted), id)
	} else {
		_, err = tx.ExecContext(ctx, fmt.Sprintf(
			`INSERT INTO %s (%s) SELECT %s FROM %s WHERE id = ?`,
			family.Active, cols, cols, family.Deleted), id)
	}
	if err != nil {
		return fmt.Errorf("restoring %s record: %w", family.Category, err)
	}

	if _, err := tx.ExecContext(ctx, fmt.Sprintf(
		`DELETE FROM %s WHERE id = ?`, family.Deleted), id); err != nil {
		return fmt.Errorf("removing %s record from trash: %w", family.Category, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing restore: %w", err)
	}
	return nil
}

// PurgeExpired removes every soft-deleted record older than the retention
// window, across all families in one pass, and returns how many rows went.
// A failing family is logged and skipped rather than aborting the sweep;
// running the purge twice in a row removes nothing the second time.
func PurgeExpired(ctx context.Context, db *sql.DB, retention time.Duration) (int64, error) {
	cutoff := sqlTime(time.Now().Add(-retention))

	var total int64
	for _, family := range Families() {
		result, err := db.ExecContext(ctx, fmt.Sprintf(
			`DELETE FROM %s WHERE deleted_at < ?`, family.Deleted), cutoff)
		if err != nil {
			slog.Error("purging trash failed", "category", family.Category, "error", err)
			continue
		}
		n, err := result.RowsAffected()
		if err != nil {
			slog.Error("counting purged rows failed", "category", family.Category, "error", err)
			continue
		}
		total += n
	}
	return total, nil
}

// PermanentDelete removes records from a family's deleted table for good.
// It never touches the active table; this is the operator's explicit
// action, distinct from the automatic purge.
func PermanentDelete(ctx context.Context, db *sql.DB, family Family, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(ids)), ", ")
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}

	_, err := db.ExecContext(ctx, fmt.Sprintf(
		`DELETE FROM %s WHERE id IN (%s)`, family.Deleted, placeholders), args...)
	if err != nil {
		return fmt.Errorf("permanently deleting %s records: %w", family.Category, err)
	}
	return nil
}

// TrashRecord is one soft-deleted row in column-keyed form, shared by all
// families so the trash listing does not need four copies.
type TrashRecord struct {
	ID        int64          `json:"id"`
	DeletedAt time.Time      `json:"deleted_at"`
	Fields    map[string]any `json:"fields"`
}

// ListTrash returns a family's soft-deleted records, newest first.
func ListTrash(ctx context.Context, db *sql.DB, family Family) ([]TrashRecord, error) {
	cols := strings.Join(family.Columns, ", ")
	rows, err := db.QueryContext(ctx, fmt.Sprintf(
		`SELECT id, %s, deleted_at FROM %s ORDER BY deleted_at DESC, id DESC`,
		cols, family.Deleted))
	if err != nil {
		return nil, fmt.Errorf("listing %s trash: %w", family.Category, err)
	}
	defer rows.Close()

	var records []TrashRecord
	for rows.Next() {
		rec := TrashRecord{Fields: make(map[string]any, len(family.Columns))}
		dest := make([]any, 0, len(family.Columns)+2)
		dest = append(dest, &rec.ID)
		vals := make([]any, len(family.Columns))
		for i := range vals {
			dest = append(dest, &vals[i])
		}
		dest = append(dest, &rec.DeletedAt)
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scanning %s trash record: %w", family.Category, err)
		}
		for i, col := range family.Columns {
			rec.Fields[col] = vals[i]
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
