package model

import "time"

// Hardware is one tracked hardware item (ledger category "pc").
type Hardware struct {
	ID           int64      `json:"id"`
	Label        string     `json:"label"`
	Factory      string     `json:"factory,omitempty"`
	Block        string     `json:"block,omitempty"`
	Department   string     `json:"department,omitempty"`
	HardwareType string     `json:"hardware_type,omitempty"`
	ComputerName string     `json:"computer_name,omitempty"`
	Brand        string     `json:"brand,omitempty"`
	Model        string     `json:"model,omitempty"`
	SerialNo     string     `json:"serial_no,omitempty"`
	HolderID     *int64     `json:"holder_id,omitempty"`
	UsageArea    string     `json:"usage_area,omitempty"`
	MachineNo    string     `json:"machine_no,omitempty"`
	IFSNo        string     `json:"ifs_no,omitempty"`
	EntryDate    time.Time  `json:"entry_date"`
	RecordedBy   string     `json:"recorded_by,omitempty"`
	DeletedAt    *time.Time `json:"deleted_at,omitempty"`
}

// License is one tracked software license.
type License struct {
	ID           int64      `json:"id"`
	Label        string     `json:"label"`
	Department   string     `json:"department,omitempty"`
	HolderID     *int64     `json:"holder_id,omitempty"`
	SoftwareName string     `json:"software_name"`
	LicenseKey   string     `json:"license_key,omitempty"`
	MailAddress  string     `json:"mail_address,omitempty"`
	IFSNo        string     `json:"ifs_no,omitempty"`
	EntryDate    time.Time  `json:"entry_date"`
	RecordedBy   string     `json:"recorded_by,omitempty"`
	Notes        string     `json:"notes,omitempty"`
	DeletedAt    *time.Time `json:"deleted_at,omitempty"`
}

// Accessory is one tracked accessory unit. Accessories are tracked per
// unit, not by quantity; bulk amounts live in stock until transferred.
type Accessory struct {
	ID          int64      `json:"id"`
	ProductName string     `json:"product_name"`
	Department  string     `json:"department,omitempty"`
	HolderID    *int64     `json:"holder_id,omitempty"`
	IFSNo       string     `json:"ifs_no,omitempty"`
	EntryDate   time.Time  `json:"entry_date"`
	RecordedBy  string     `json:"recorded_by,omitempty"`
	Note        string     `json:"note,omitempty"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty"`
}

// StockItem is a bulk-stock ledger entry. Quantity never goes negative;
// a fully transferred entry stays at quantity 0 instead of disappearing,
// so "ran out" is distinguishable from "never existed".
type StockItem struct {
	ID          int64      `json:"id"`
	ProductName string     `json:"product_name"`
	Category    string     `json:"category,omitempty"`
	Brand       string     `json:"brand,omitempty"`
	Quantity    int        `json:"quantity"`
	Location    string     `json:"location,omitempty"`
	IFSNo       string     `json:"ifs_no,omitempty"`
	Note        string     `json:"note,omitempty"`
	UpdatedAt   time.Time  `json:"updated_at"`
	RecordedBy  string     `json:"recorded_by,omitempty"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty"`
}
