package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/receipt-rewards-ledger/internal/api/handler"
	"github.com/receipt-rewards-ledger/internal/api/middleware"
)

// setupRouter configures API routes and middleware for the application
func setupRouter(logger *slog.Logger, r *gin.Engine, receiptHandler *handler.ReceiptHandler) {
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CorrelationID())

	// Receipt operations
	receipts := r.Group("/receipts")
	{
		receipts.POST("/process", receiptHandler.Process)
		receipts.GET("/:id/points", receiptHandler.GetPoints)
	}

	// Health check endpoint for monitoring
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "timestamp": time.Now().UTC()})
	})
}
