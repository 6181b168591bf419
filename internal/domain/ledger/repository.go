package ledger

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the key-value store mapping receipt identifiers to their
// awarded points
type Repository interface {
	Put(ctx context.Context, entry *Entry) error
	Get(ctx context.Context, id uuid.UUID) (*Entry, error)
}

// ErrEntryNotFound indicates no points are stored under an identifier
type ErrEntryNotFound struct {
	ID uuid.UUID
}

func (e ErrEntryNotFound) Error() string {
	return "ledger entry not found: " + e.ID.String()
}

// Is implements the errors.Is interface for ErrEntryNotFound
func (e ErrEntryNotFound) Is(target error) bool {
	t, ok := target.(ErrEntryNotFound)
	if !ok {
		return false
	}
	// If the target ID is empty, consider it a match for any ErrEntryNotFound
	if t.ID == uuid.Nil {
		return true
	}
	return e.ID == t.ID
}

// ErrDuplicateEntry indicates identifier uniqueness violation
type ErrDuplicateEntry struct {
	ID uuid.UUID
}

func (e ErrDuplicateEntry) Error() string {
	return "duplicate ledger entry: " + e.ID.String()
}

// Is implements the errors.Is interface for ErrDuplicateEntry
func (e ErrDuplicateEntry) Is(target error) bool {
	t, ok := target.(ErrDuplicateEntry)
	if !ok {
		return false
	}
	if t.ID == uuid.Nil {
		return true
	}
	return e.ID == t.ID
}
