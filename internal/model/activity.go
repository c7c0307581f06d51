package model

import "time"

// ActivityEntry is one coarse diagnostic record of who did what. Purely
// append-only; it carries no invariants beyond timestamp ordering.
type ActivityEntry struct {
	ID        int64     `json:"id"`
	Actor     string    `json:"actor"`
	Action    string    `json:"action"`
	CreatedAt time.Time `json:"created_at"`
}
