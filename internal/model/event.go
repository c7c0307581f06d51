package model

import "time"

// Record categories tracked by the ledger. The category travels as an
// explicit string discriminator; there are no cross-category foreign keys.
const (
	CategoryPC        = "pc"
	CategoryLicense   = "license"
	CategoryAccessory = "accessory"
	CategoryStock     = "stock"
)

// Ledger actions.
const (
	ActionAssign  = "assign"
	ActionReturn  = "return"
	ActionMove    = "move"
	ActionRelabel = "relabel"
)

// Categories lists all known categories.
var Categories = []string{CategoryPC, CategoryLicense, CategoryAccessory, CategoryStock}

// ValidCategory reports whether c is one of the known categories.
func ValidCategory(c string) bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// LedgerEvent is one immutable record of a custody, location or label
// change. Events are only ever appended; a mistake is corrected by
// appending a compensating event.
type LedgerEvent struct {
	ID          int64     `json:"id"`
	Category    string    `json:"category"`
	ItemID      int64     `json:"item_id"`
	Action      string    `json:"action"`
	OldHolderID *int64    `json:"old_holder_id,omitempty"`
	NewHolderID *int64    `json:"new_holder_id,omitempty"`
	OldLocation string    `json:"old_location,omitempty"`
	NewLocation string    `json:"new_location,omitempty"`
	OldLabel    string    `json:"old_label,omitempty"`
	NewLabel    string    `json:"new_label,omitempty"`
	Note        string    `json:"note,omitempty"`
	ActorID     int64     `json:"actor_id"`
	ChangeDate  time.Time `json:"change_date"`

	// Resolved at read time via joins (not always populated). Renaming a
	// holder or location retroactively changes how history displays; the
	// raw ids above stay untouched.
	OldHolderName   string `json:"old_holder_name,omitempty"`
	NewHolderName   string `json:"new_holder_name,omitempty"`
	OldLocationName string `json:"old_location_name,omitempty"`
	NewLocationName string `json:"new_location_name,omitempty"`
}

// LatestState is the resolved current holder/location/label of an item,
// taken from its most recent ledger event. An item with no events has no
// latest state at all.
type LatestState struct {
	EventID    int64     `json:"event_id"`
	Category   string    `json:"category"`
	ItemID     int64     `json:"item_id"`
	Action     string    `json:"action"`
	HolderID   *int64    `json:"holder_id,omitempty"`
	HolderName string    `json:"holder_name,omitempty"`
	Location   string    `json:"location,omitempty"`
	Label      string    `json:"label,omitempty"`
	ChangeDate time.Time `json:"change_date"`
}
