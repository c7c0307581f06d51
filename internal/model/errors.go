package model

import "errors"

// Error kinds surfaced by the store layer. Callers distinguish them with
// errors.Is; the API layer maps them to HTTP status codes.
var (
	// ErrValidation marks a malformed event or request, such as an unknown
	// category or a missing action field. Never worth retrying.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound marks a soft-delete, restore or transfer target that
	// does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInsufficientQuantity marks a transfer that asks for more than the
	// stock entry holds. An expected business condition, surfaced verbatim.
	ErrInsufficientQuantity = errors.New("insufficient quantity")

	// ErrConflict marks a write that raced another writer on the same row.
	// Retrying the whole operation from scratch is safe.
	ErrConflict = errors.New("concurrent modification")
)
