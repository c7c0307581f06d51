package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/fixadd/BilgiislemTool/internal/model"
)

// execer is satisfied by both *sql.DB and *sql.Tx, so helpers can run
// inside or outside a transaction.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// Family describes one record family's active/deleted table pair. The
// soft-delete, restore, purge and permanent-delete code is written once
// against this descriptor instead of once per table.
type Family struct {
	Category string
	Active   string
	Deleted  string
	// Columns shared by the active table and its shadow, excluding id
	// and deleted_at.
	Columns []string
}

var (
	FamilyHardware = Family{
		Category: model.CategoryPC,
		Active:   "hardware_inventory",
		Deleted:  "deleted_hardware_inventory",
		Columns: []string{
			"label", "factory", "block", "department", "hardware_type",
			"computer_name", "brand", "model", "serial_no", "holder_id",
			"usage_area", "machine_no", "ifs_no", "entry_date", "recorded_by",
		},
	}
	FamilyLicense = Family{
		Category: model.CategoryLicense,
		Active:   "license_inventory",
		Deleted:  "deleted_license_inventory",
		Columns: []string{
			"label", "department", "holder_id", "software_name", "license_key",
			"mail_address", "ifs_no", "entry_date", "recorded_by", "notes",
		},
	}
	FamilyAccessory = Family{
		Category: model.CategoryAccessory,
		Active:   "accessory_inventory",
		Deleted:  "deleted_accessory_inventory",
		Columns: []string{
			"product_name", "department", "holder_id", "ifs_no",
			"entry_date", "recorded_by", "note",
		},
	}
	FamilyStock = Family{
		Category: model.CategoryStock,
		Active:   "stock_items",
		Deleted:  "deleted_stock_items",
		Columns: []string{
			"product_name", "category", "brand", "quantity", "location",
			"ifs_no", "note", "updated_at", "recorded_by",
		},
	}
)

// Families lists all record families, in purge order.
func Families() []Family {
	return []Family{FamilyHardware, FamilyLicense, FamilyAccessory, FamilyStock}
}

// FamilyFor returns the family for a ledger category.
func FamilyFor(category string) (Family, error) {
	for _, f := range Families() {
		if f.Category == category {
			return f, nil
		}
	}
	return Family{}, fmt.Errorf("unknown category %q: %w", category, model.ErrValidation)
}

// sqlTime formats t the way SQLite's CURRENT_TIMESTAMP does, so stored
// values sort and compare consistently as text.
func sqlTime(t time.Time) string {
	return t.UTC().Format("2006-01-02 15:04:05")
}

// nullStr maps an empty string to NULL so unset optional fields stay
// distinguishable from empty values.
func nullStr(s string) any {
	if s == "" {
		return nil
	}
	return s
}
