package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fixadd/BilgiislemTool/internal/model"
)

// TransferAttrs are caller-supplied attributes stamped onto the records a
// transfer creates, overlaying the descriptive fields copied from the
// stock entry.
type TransferAttrs struct {
	HolderID   *int64 `json:"holder_id,omitempty"`
	Department string `json:"department,omitempty"`
	Label      string `json:"label,omitempty"`
	UsageArea  string `json:"usage_area,omitempty"`
	Note       string `json:"note,omitempty"`
}

// Transfer converts qty units of a bulk-stock entry into individually
// tracked records of the target category. In one transaction it creates
// the records, decrements the stock quantity, and appends exactly one
// "move" ledger event on the stock entry. A stock entry that reaches 0
// keeps its row. Returns the ids of the created records.
func Transfer(ctx context.Context, db *sql.DB, stockID int64, target string, qty int, attrs TransferAttrs, actorID int64, actorName string) ([]int64, error) {
	return moveStock(ctx, db, stockID, target, qty, attrs, actorID, actorName, model.ActionMove)
}

// Assign is Transfer plus custody: the created records carry the holder
// and the ledger gets an "assign" event, so the latest-state view reports
// custodianship rather than relocation.
func Assign(ctx context.Context, db *sql.DB, stockID int64, target string, qty int, attrs TransferAttrs, actorID int64, actorName string) ([]int64, error) {
	if attrs.HolderID == nil {
		return nil, fmt.Errorf("assign requires a holder: %w", model.ErrValidation)
	}
	return moveStock(ctx, db, stockID, target, qty, attrs, actorID, actorName, model.ActionAssign)
}

func moveStock(ctx context.Context, db *sql.DB, stockID int64, target string, qty int, attrs TransferAttrs, actorID int64, actorName, action string) ([]int64, error) {
	if qty <= 0 {
		return nil, fmt.Errorf("quantity must be positive: %w", model.ErrValidation)
	}
	switch target {
	case model.CategoryPC, model.CategoryLicense, model.CategoryAccessory:
	default:
		return nil, fmt.Errorf("cannot transfer stock into %q: %w", target, model.ErrValidation)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	var productName, brand, ifsNo string
	var available int
	err = tx.QueryRowContext(ctx,
		`SELECT product_name, brand, ifs_no, quantity FROM stock_items WHERE id = ?`,
		stockID,
	).Scan(&productName, &brand, &ifsNo, &available)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("stock item %d: %w", stockID, model.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("reading stock item: %w", err)
	}
	if available < qty {
		return nil, fmt.Errorf("stock item %d has %d, need %d: %w",
			stockID, available, qty, model.ErrInsufficientQuantity)
	}

	// Guarded decrement: the quantity condition re-checks under the write
	// lock, so two transfers racing on the same row cannot both pass a
	// stale availability check and jointly overdraw.
	result, err := tx.ExecContext(ctx,
		`UPDATE stock_items SET quantity = quantity - ?, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ? AND quantity >= ?`,
		qty, stockID, qty,
	)
	if err != nil {
		return nil, fmt.Errorf("decrementing stock: %w", err)
	}
	if n, err := result.RowsAffected(); err != nil {
		return nil, fmt.Errorf("checking stock decrement: %w", err)
	} else if n == 0 {
		return nil, fmt.Errorf("stock item %d changed underneath the transfer: %w",
			stockID, model.ErrConflict)
	}

	created := make([]int64, 0, qty)
	for i := 0; i < qty; i++ {
		id, err := createTransferTarget(ctx, tx, target, productName, brand, ifsNo, attrs, actorName)
		if err != nil {
			return nil, err
		}
		created = append(created, id)
	}

	note := fmt.Sprintf("transferred %d x %s to %s", qty, productName, target)
	if attrs.Note != "" {
		note += ": " + attrs.Note
	}
	ev := &model.LedgerEvent{
		Category: model.CategoryStock,
		ItemID:   stockID,
		Action:   action,
		Note:     note,
		ActorID:  actorID,
	}
	if action == model.ActionAssign {
		ev.NewHolderID = attrs.HolderID
	} else {
		ev.NewLocation = target
	}
	if err := validateEvent(ev); err != nil {
		return nil, err
	}
	if _, err := appendEvent(ctx, tx, ev); err != nil {
		return nil, err
	}

	if err := logAction(ctx, tx, actorName,
		fmt.Sprintf("transferred %d from stock item %d to %s", qty, stockID, target)); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing transfer: %w", err)
	}
	return created, nil
}

// createTransferTarget inserts one record of the target category, copying
// the stock entry's descriptive fields and overlaying the caller's attrs.
func createTransferTarget(ctx context.Context, tx *sql.Tx, target, productName, brand, ifsNo string, attrs TransferAttrs, actorName string) (int64, error) {
	var result sql.Result
	var err error

	switch target {
	case model.CategoryPC:
		result, err = tx.ExecContext(ctx,
			`INSERT INTO hardware_inventory
			 (label, department, computer_name, brand, holder_id, usage_area, ifs_no, recorded_by)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			attrs.Label, attrs.Department, productName, brand,
			attrs.HolderID, attrs.UsageArea, ifsNo, actorName)
	case model.CategoryLicense:
		result, err = tx.ExecContext(ctx,
			`INSERT INTO license_inventory
			 (label, department, holder_id, software_name, ifs_no, recorded_by, notes)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			attrs.Label, attrs.Department, attrs.HolderID, productName,
			ifsNo, actorName, attrs.Note)
	case model.CategoryAccessory:
		result, err = tx.ExecContext(ctx,
			`INSERT INTO accessory_inventory
			 (product_name, department, holder_id, ifs_no, recorded_by, note)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			productName, attrs.Department, attrs.HolderID, ifsNo, actorName, attrs.Note)
	}
	if err != nil {
		return 0, fmt.Errorf("creating %s record: %w", target, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting created %s id: %w", target, err)
	}
	return id, nil
}
