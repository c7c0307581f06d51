package model

import "time"

// User is a person who can hold inventory or act on the system. Display
// names for ledger holders resolve from this table at read time.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	FirstName    string    `json:"first_name,omitempty"`
	LastName     string    `json:"last_name,omitempty"`
	Email        string    `json:"email,omitempty"`
	PasswordHash string    `json:"-"`
	IsAdmin      bool      `json:"is_admin"`
	CreatedAt    time.Time `json:"created_at"`
}

// DisplayName returns the user's full name, falling back to the username.
func (u *User) DisplayName() string {
	if u.FirstName == "" && u.LastName == "" {
		return u.Username
	}
	return u.FirstName + " " + u.LastName
}

// LookupItem is an admin-managed dropdown value, such as a location.
// Ledger location fields store the lookup id and resolve to the name when
// history is read.
type LookupItem struct {
	ID   int64  `json:"id"`
	Type string `json:"type"`
	Name string `json:"name"`
}

// Lookup types.
const (
	LookupLocation   = "location"
	LookupDepartment = "department"
)
