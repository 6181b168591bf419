package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/receipt-rewards-ledger/internal/domain/receipt"
)

// ReceiptService defines the interface for receipt operations
type ReceiptService interface {
	// ProcessReceipt validates and scores a submitted receipt, storing the
	// result in the ledger under a freshly generated identifier.
	// Returns receipt.ValidationError if the receipt violates the format grammar
	ProcessReceipt(ctx context.Context, rcpt *receipt.Receipt) (uuid.UUID, error)

	// GetPoints retrieves the points awarded to a previously processed receipt
	// Returns ledger.ErrEntryNotFound if the identifier is unknown
	GetPoints(ctx context.Context, id uuid.UUID) (int64, error)
}
