package handler

import (
	"errors"
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/receipt-rewards-ledger/internal/api/service"
	"github.com/receipt-rewards-ledger/internal/domain/ledger"
	"github.com/receipt-rewards-ledger/internal/domain/receipt"
)

// ReceiptHandler handles HTTP requests for receipt operations
type ReceiptHandler struct {
	receiptService service.ReceiptService
	logger         *slog.Logger
}

// NewReceiptHandler creates a new receipt handler
func NewReceiptHandler(logger *slog.Logger, receiptService service.ReceiptService) *ReceiptHandler {
	return &ReceiptHandler{
		receiptService: receiptService,
		logger:         logger,
	}
}

// Process handles submission of a new receipt. Grammar violations are
// reported with their distinct reason; valid receipts return the freshly
// generated identifier.
func (h *ReceiptHandler) Process(c *gin.Context) {
	var req ProcessReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid request body", "error", err)
		RespondBadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	id, err := h.receiptService.ProcessReceipt(c.Request.Context(), req.toDomain())
	if err != nil {
		var validationErr receipt.ValidationError
		if errors.As(err, &validationErr) {
			RespondBadRequest(c, validationErr.Reason)
			return
		}
		h.logger.Error("Failed to process receipt", "error", err)
		RespondInternalError(c)
		return
	}

	RespondCreated(c, ProcessReceiptResponse{ID: id.String()})
}

// GetPoints returns the points awarded to a receipt, 404 if the identifier
// is unknown. A malformed identifier is just an unknown one.
func (h *ReceiptHandler) GetPoints(c *gin.Context) {
	idParam := c.Param("id")
	id, err := uuid.Parse(idParam)
	if err != nil {
		RespondNotFound(c, "Receipt not found")
		return
	}

	points, err := h.receiptService.GetPoints(c.Request.Context(), id)
	if err != nil {
		var notFoundErr ledger.ErrEntryNotFound
		if errors.As(err, &notFoundErr) {
			RespondNotFound(c, "Receipt not found")
			return
		}
		h.logger.Error("Failed to get receipt points", "id", idParam, "error", err)
		RespondInternalError(c)
		return
	}

	RespondOK(c, PointsResponse{Points: points})
}
