// Package postgres provides the PostgreSQL implementation of the ledger
// repository. Receipt points are written once and read back by identifier.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/receipt-rewards-ledger/internal/domain/ledger"
	"github.com/receipt-rewards-ledger/internal/platform/persistence"
)

// pgUniqueViolation is the SQLSTATE code for unique constraint violations
const pgUniqueViolation = "23505"

// LedgerRepository implements the ledger.Repository interface for PostgreSQL
type LedgerRepository struct {
	querier persistence.Querier // Can be *pgxpool.Pool or pgx.Tx
	logger  *slog.Logger
}

// NewLedgerRepository creates a new PostgreSQL ledger repository.
// It expects db.Pool() to satisfy persistence.Querier.
func NewLedgerRepository(logger *slog.Logger, db *persistence.PostgresDB) ledger.Repository {
	return &LedgerRepository{
		querier: db.Pool(),
		logger:  logger,
	}
}

// Put stores a new ledger entry. The primary key constraint maps to
// ErrDuplicateEntry so identifiers are never overwritten.
func (r *LedgerRepository) Put(ctx context.Context, entry *ledger.Entry) error {
	query := `
		INSERT INTO receipt_points (id, points, created_at)
		VALUES ($1, $2, $3)
	`

	_, err := r.querier.Exec(ctx, query, entry.ID, entry.Points, entry.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return ledger.ErrDuplicateEntry{ID: entry.ID}
		}
		r.logger.Error("Failed to store receipt points", "id", entry.ID.String(), "error", err)
		return fmt.Errorf("failed to store receipt points: %w", err)
	}

	return nil
}

// Get retrieves the entry stored under the given identifier.
// Returns ErrEntryNotFound if the identifier is unknown.
func (r *LedgerRepository) Get(ctx context.Context, id uuid.UUID) (*ledger.Entry, error) {
	query := `
		SELECT id, points, created_at
		FROM receipt_points
		WHERE id = $1
	`

	var entry ledger.Entry
	err := r.querier.QueryRow(ctx, query, id).Scan(
		&entry.ID,
		&entry.Points,
		&entry.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ledger.ErrEntryNotFound{ID: id}
		}
		r.logger.Error("Failed to get receipt points", "id", id.String(), "error", err)
		return nil, fmt.Errorf("failed to get receipt points: %w", err)
	}

	return &entry, nil
}
