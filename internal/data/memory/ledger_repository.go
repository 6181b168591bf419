// Package memory provides an in-process implementation of the ledger
// repository. It is the default backend for development and tests.
package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/receipt-rewards-ledger/internal/domain/ledger"
)

// LedgerRepository implements the ledger.Repository interface with a
// mutex-guarded map
type LedgerRepository struct {
	mu      sync.RWMutex
	entries map[uuid.UUID]ledger.Entry
}

// NewLedgerRepository creates a new in-memory ledger repository
func NewLedgerRepository() ledger.Repository {
	return &LedgerRepository{
		entries: make(map[uuid.UUID]ledger.Entry),
	}
}

// Put stores a new entry. Returns ErrDuplicateEntry if the identifier is
// already present; entries are never overwritten.
func (r *LedgerRepository) Put(ctx context.Context, entry *ledger.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[entry.ID]; exists {
		return ledger.ErrDuplicateEntry{ID: entry.ID}
	}

	r.entries[entry.ID] = *entry
	return nil
}

// Get retrieves the entry stored under the given identifier.
// Returns ErrEntryNotFound if the identifier is unknown.
func (r *LedgerRepository) Get(ctx context.Context, id uuid.UUID) (*ledger.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, exists := r.entries[id]
	if !exists {
		return nil, ledger.ErrEntryNotFound{ID: id}
	}

	return &entry, nil
}
