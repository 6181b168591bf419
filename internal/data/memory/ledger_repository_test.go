package memory

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/receipt-rewards-ledger/internal/domain/ledger"
)

func TestLedgerRepository_PutAndGet(t *testing.T) {
	ctx := context.Background()
	repo := NewLedgerRepository()

	entry := &ledger.Entry{
		ID:        uuid.New(),
		Points:    37,
		CreatedAt: time.Now().UTC(),
	}

	require.NoError(t, repo.Put(ctx, entry))

	// Every subsequent read returns the stored points.
	for i := 0; i < 3; i++ {
		got, err := repo.Get(ctx, entry.ID)
		require.NoError(t, err)
		assert.Equal(t, entry.Points, got.Points)
		assert.Equal(t, entry.ID, got.ID)
	}
}

func TestLedgerRepository_GetUnknownID(t *testing.T) {
	ctx := context.Background()
	repo := NewLedgerRepository()

	unknownID := uuid.New()
	got, err := repo.Get(ctx, unknownID)

	assert.Nil(t, got)
	require.Error(t, err)
	assert.ErrorIs(t, err, ledger.ErrEntryNotFound{ID: unknownID})
}

func TestLedgerRepository_PutDuplicate(t *testing.T) {
	ctx := context.Background()
	repo := NewLedgerRepository()

	entry := &ledger.Entry{ID: uuid.New(), Points: 10, CreatedAt: time.Now().UTC()}
	require.NoError(t, repo.Put(ctx, entry))

	dup := &ledger.Entry{ID: entry.ID, Points: 99, CreatedAt: time.Now().UTC()}
	err := repo.Put(ctx, dup)
	require.Error(t, err)
	assert.ErrorIs(t, err, ledger.ErrDuplicateEntry{ID: entry.ID})

	// The original entry is never overwritten.
	got, err := repo.Get(ctx, entry.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(10), got.Points)
}

func TestLedgerRepository_ReturnedEntryIsACopy(t *testing.T) {
	ctx := context.Background()
	repo := NewLedgerRepository()

	entry := &ledger.Entry{ID: uuid.New(), Points: 5, CreatedAt: time.Now().UTC()}
	require.NoError(t, repo.Put(ctx, entry))

	got, err := repo.Get(ctx, entry.ID)
	require.NoError(t, err)
	got.Points = 500

	again, err := repo.Get(ctx, entry.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(5), again.Points)
}
