package mongo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/receipt-rewards-ledger/internal/domain/ledger"
)

const (
	// LedgerCollectionName is the name of the receipt points collection in MongoDB
	LedgerCollectionName = "receipt_points"
)

// LedgerRepository implements the ledger.Repository interface for MongoDB
type LedgerRepository struct {
	db     *mongo.Database
	logger *slog.Logger
}

// NewLedgerRepository creates a new MongoDB ledger repository
func NewLedgerRepository(logger *slog.Logger, db *mongo.Database) ledger.Repository {
	return &LedgerRepository{
		db:     db,
		logger: logger,
	}
}

// Put stores a new ledger entry after checking for duplicates.
// Returns ErrDuplicateEntry if an entry with the same identifier exists.
func (r *LedgerRepository) Put(ctx context.Context, entry *ledger.Entry) error {
	collection := r.db.Collection(LedgerCollectionName)

	existingEntry, err := r.Get(ctx, entry.ID)
	if err != nil && !errors.Is(err, ledger.ErrEntryNotFound{}) {
		r.logger.Error("Failed to check for existing ledger entry",
			"id", entry.ID.String(),
			"error", err)
		return fmt.Errorf("failed to check for existing ledger entry: %w", err)
	}

	if existingEntry != nil {
		return ledger.ErrDuplicateEntry{ID: entry.ID}
	}

	_, err = collection.InsertOne(ctx, entry)
	if err != nil {
		r.logger.Error("Failed to store receipt points",
			"id", entry.ID.String(),
			"error", err)
		return fmt.Errorf("failed to store receipt points: %w", err)
	}

	return nil
}

// Get retrieves the entry stored under the given identifier.
// Returns ErrEntryNotFound if the identifier is unknown.
func (r *LedgerRepository) Get(ctx context.Context, id uuid.UUID) (*ledger.Entry, error) {
	collection := r.db.Collection(LedgerCollectionName)

	filter := bson.M{"id": id}
	var entry ledger.Entry
	err := collection.FindOne(ctx, filter).Decode(&entry)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ledger.ErrEntryNotFound{ID: id}
		}
		r.logger.Error("Failed to get receipt points",
			"id", id.String(),
			"error", err)
		return nil, fmt.Errorf("failed to get receipt points: %w", err)
	}

	return &entry, nil
}
