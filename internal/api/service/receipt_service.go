package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/receipt-rewards-ledger/internal/domain/ledger"
	"github.com/receipt-rewards-ledger/internal/domain/receipt"
	"github.com/receipt-rewards-ledger/internal/platform/messaging/producers"
)

// ReceiptServiceImpl implements the ReceiptService interface
type ReceiptServiceImpl struct {
	ledgerRepo ledger.Repository
	producer   producers.MessagePublisher // Optional, may be nil
	logger     *slog.Logger
}

// NewReceiptService creates a new receipt service. The producer may be nil,
// in which case no scored-receipt events are published.
func NewReceiptService(logger *slog.Logger, ledgerRepo ledger.Repository, producer producers.MessagePublisher) ReceiptService {
	return &ReceiptServiceImpl{
		ledgerRepo: ledgerRepo,
		producer:   producer,
		logger:     logger,
	}
}

// ProcessReceipt validates and scores a receipt, then stores the points under
// a freshly generated identifier. Scoring only runs on receipts that passed
// validation, so the score is always a non-negative integer.
func (s *ReceiptServiceImpl) ProcessReceipt(ctx context.Context, rcpt *receipt.Receipt) (uuid.UUID, error) {
	if err := receipt.Validate(rcpt); err != nil {
		s.logger.Warn("Receipt failed validation", "retailer", rcpt.Retailer, "error", err)
		return uuid.Nil, err
	}

	entry := &ledger.Entry{
		ID:        uuid.New(),
		Points:    receipt.Score(rcpt),
		CreatedAt: time.Now().UTC(),
	}

	if err := s.ledgerRepo.Put(ctx, entry); err != nil {
		s.logger.Error("Failed to store receipt points",
			"id", entry.ID.String(),
			"error", err,
		)
		return uuid.Nil, err
	}

	s.logger.Info("Receipt processed",
		"id", entry.ID.String(),
		"retailer", rcpt.Retailer,
		"points", entry.Points,
	)

	if s.producer != nil {
		event := &producers.ReceiptScoredEvent{
			ID:       entry.ID,
			Points:   entry.Points,
			ScoredAt: entry.CreatedAt,
		}
		if err := s.producer.Publish(ctx, entry.ID.String(), event); err != nil {
			// The ledger write already succeeded; the submitter still gets the id.
			s.logger.Error("Failed to publish receipt scored event",
				"id", entry.ID.String(),
				"error", err,
			)
		}
	}

	return entry.ID, nil
}

// GetPoints retrieves the points stored under the given identifier.
// Returns ledger.ErrEntryNotFound if the identifier is unknown.
func (s *ReceiptServiceImpl) GetPoints(ctx context.Context, id uuid.UUID) (int64, error) {
	entry, err := s.ledgerRepo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ledger.ErrEntryNotFound{}) {
			s.logger.Info("Receipt points not found", "id", id.String())
			return 0, err
		}
		s.logger.Error("Failed to get receipt points", "id", id.String(), "error", err)
		return 0, err
	}

	return entry.Points, nil
}
