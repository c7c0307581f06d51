package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fixadd/BilgiislemTool/internal/model"
)

// Intake helpers for the four record families. Edits that change custody,
// location or label are the caller's business and must be paired with the
// matching ledger event; the store never infers events from record writes.

// CreateHardware creates a hardware record.
func CreateHardware(ctx context.Context, db *sql.DB, h *model.Hardware) (*model.Hardware, error) {
	result, err := db.ExecContext(ctx,
		`INSERT INTO hardware_inventory
		 (label, factory, block, department, hardware_type, computer_name,
		  brand, model, serial_no, holder_id, usage_area, machine_no, ifs_no, recorded_by)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		h.Label, h.Factory, h.Block, h.Department, h.HardwareType, h.ComputerName,
		h.Brand, h.Model, h.SerialNo, h.HolderID, h.UsageArea, h.MachineNo, h.IFSNo, h.RecordedBy,
	)
	if err != nil {
		return nil, fmt.Errorf("creating hardware record: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting hardware id: %w", err)
	}
	return GetHardware(ctx, db, id)
}

// GetHardware returns a hardware record by id, or nil when absent.
func GetHardware(ctx context.Context, db *sql.DB, id int64) (*model.Hardware, error) {
	h := &model.Hardware{}
	err := db.QueryRowContext(ctx,
		`SELECT id, label, factory, block, department, hardware_type, computer_name,
		        brand, model, serial_no, holder_id, usage_area, machine_no, ifs_no,
		        entry_date, recorded_by
		 FROM hardware_inventory WHERE id = ?`, id,
	).Scan(&h.ID, &h.Label, &h.Factory, &h.Block, &h.Department, &h.HardwareType,
		&h.ComputerName, &h.Brand, &h.Model, &h.SerialNo, &h.HolderID, &h.UsageArea,
		&h.MachineNo, &h.IFSNo, &h.EntryDate, &h.RecordedBy)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting hardware record: %w", err)
	}
	return h, nil
}

// ListHardware returns all active hardware records.
func ListHardware(ctx context.Context, db *sql.DB) ([]model.Hardware, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, label, factory, block, department, hardware_type, computer_name,
		        brand, model, serial_no, holder_id, usage_area, machine_no, ifs_no,
		        entry_date, recorded_by
		 FROM hardware_inventory ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing hardware records: %w", err)
	}
	defer rows.Close()

	var items []model.Hardware
	for rows.Next() {
		var h model.Hardware
		if err := rows.Scan(&h.ID, &h.Label, &h.Factory, &h.Block, &h.Department,
			&h.HardwareType, &h.ComputerName, &h.Brand, &h.Model, &h.SerialNo,
			&h.HolderID, &h.UsageArea, &h.MachineNo, &h.IFSNo, &h.EntryDate, &h.RecordedBy); err != nil {
			return nil, fmt.Errorf("scanning hardware record: %w", err)
		}
		items = append(items, h)
	}
	return items, rows.Err()
}

// CreateLicense creates a license record.
func CreateLicense(ctx context.Context, db *sql.DB, l *model.License) (*model.License, error) {
	result, err := db.ExecContext(ctx,
		`INSERT INTO license_inventory
		 (label, department, holder_id, software_name, license_key, mail_address,
		  ifs_no, recorded_by, notes)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		l.Label, l.Department, l.HolderID, l.SoftwareName, l.LicenseKey,
		l.MailAddress, l.IFSNo, l.RecordedBy, l.Notes,
	)
	if err != nil {
		return nil, fmt.Errorf("creating license record: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting license id: %w", err)
	}
	return GetLicense(ctx, db, id)
}

// GetLicense returns a license record by id, or nil when absent.
func GetLicense(ctx context.Context, db *sql.DB, id int64) (*model.License, error) {
	l := &model.License{}
	err := db.QueryRowContext(ctx,
		`SELECT id, label, department, holder_id, software_name, license_key,
		        mail_address, ifs_no, entry_date, recorded_by, notes
		 FROM license_inventory WHERE id = ?`, id,
	).Scan(&l.ID, &l.Label, &l.Department, &l.HolderID, &l.SoftwareName,
		&l.LicenseKey, &l.MailAddress, &l.IFSNo, &l.EntryDate, &l.RecordedBy, &l.Notes)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting license record: %w", err)
	}
	return l, nil
}

// ListLicenses returns all active license records.
func ListLicenses(ctx context.Context, db *sql.DB) ([]model.License, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, label, department, holder_id, software_name, license_key,
		        mail_address, ifs_no, entry_date, recorded_by, notes
		 FROM license_inventory ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing license records: %w", err)
	}
	defer rows.Close()

	var items []model.License
	for rows.Next() {
		var l model.License
		if err := rows.Scan(&l.ID, &l.Label, &l.Department, &l.HolderID, &l.SoftwareName,
			&l.LicenseKey, &l.MailAddress, &l.IFSNo, &l.EntryDate, &l.RecordedBy, &l.Notes); err != nil {
			return nil, fmt.Errorf("scanning license record: %w", err)
		}
		items = append(items, l)
	}
	return items, rows.Err()
}

// CreateAccessory creates one accessory unit.
func CreateAccessory(ctx context.Context, db *sql.DB, a *model.Accessory) (*model.Accessory, error) {
	result, err := db.ExecContext(ctx,
		`INSERT INTO accessory_inventory
		 (product_name, department, holder_id, ifs_no, recorded_by, note)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		a.ProductName, a.Department, a.HolderID, a.IFSNo, a.RecordedBy, a.Note,
	)
	if err != nil {
		return nil, fmt.Errorf("creating accessory record: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting accessory id: %w", err)
	}
	return GetAccessory(ctx, db, id)
}

// GetAccessory returns an accessory record by id, or nil when absent.
func GetAccessory(ctx context.Context, db *sql.DB, id int64) (*model.Accessory, error) {
	a := &model.Accessory{}
	err := db.QueryRowContext(ctx,
		`SELECT id, product_name, department, holder_id, ifs_no, entry_date, recorded_by, note
		 FROM accessory_inventory WHERE id = ?`, id,
	).Scan(&a.ID, &a.ProductName, &a.Department, &a.HolderID, &a.IFSNo,
		&a.EntryDate, &a.RecordedBy, &a.Note)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting accessory record: %w", err)
	}
	return a, nil
}

// ListAccessories returns all active accessory records.
func ListAccessories(ctx context.Context, db *sql.DB) ([]model.Accessory, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, product_name, department, holder_id, ifs_no, entry_date, recorded_by, note
		 FROM accessory_inventory ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing accessory records: %w", err)
	}
	defer rows.Close()

	var items []model.Accessory
	for rows.Next() {
		var a model.Accessory
		if err := rows.Scan(&a.ID, &a.ProductName, &a.Department, &a.HolderID,
			&a.IFSNo, &a.EntryDate, &a.RecordedBy, &a.Note); err != nil {
			return nil, fmt.Errorf("scanning accessory record: %w", err)
		}
		items = append(items, a)
	}
	return items, rows.Err()
}

// CreateStockItem creates a bulk-stock entry.
func CreateStockItem(ctx context.Context, db *sql.DB, s *model.StockItem) (*model.StockItem, error) {
	if s.Quantity < 0 {
		return nil, fmt.Errorf("stock quantity must not be negative: %w", model.ErrValidation)
	}

	result, err := db.ExecContext(ctx,
		`INSERT INTO stock_items
		 (product_name, category, brand, quantity, location, ifs_no, note, recorded_by)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		s.ProductName, s.Category, s.Brand, s.Quantity, s.Location, s.IFSNo, s.Note, s.RecordedBy,
	)
	if err != nil {
		return nil, fmt.Errorf("creating stock item: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting stock item id: %w", err)
	}
	return GetStockItem(ctx, db, id)
}

// GetStockItem returns a stock entry by id, or nil when absent.
func GetStockItem(ctx context.Context, db *sql.DB, id int64) (*model.StockItem, error) {
	s := &model.StockItem{}
	err := db.QueryRowContext(ctx,
		`SELECT id, product_name, category, brand, quantity, location, ifs_no,
		        note, updated_at, recorded_by
		 FROM stock_items WHERE id = ?`, id,
	).Scan(&s.ID, &s.ProductName, &s.Category, &s.Brand, &s.Quantity,
		&s.Location, &s.IFSNo, &s.Note, &s.UpdatedAt, &s.RecordedBy)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting stock item: %w", err)
	}
	return s, nil
}

// ListStockItems returns all active stock entries, including those that
// have run down to quantity 0.
func ListStockItems(ctx context.Context, db *sql.DB) ([]model.StockItem, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, product_name, category, brand, quantity, location, ifs_no,
		        note, updated_at, recorded_by
		 FROM stock_items ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing stock items: %w", err)
	}
	defer rows.Close()

	var items []model.StockItem
	for rows.Next() {
		var s model.StockItem
		if err := rows.Scan(&s.ID, &s.ProductName, &s.Category, &s.Brand, &s.Quantity,
			&s.Location, &s.IFSNo, &s.Note, &s.UpdatedAt, &s.RecordedBy); err != nil {
			return nil, fmt.Errorf("scanning stock item: %w", err)
		}
		items = append(items, s)
	}
	return items, rows.Err()
}
