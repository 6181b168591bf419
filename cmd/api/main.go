package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/receipt-rewards-ledger/internal/api"
	"github.com/receipt-rewards-ledger/internal/api/service"
	"github.com/receipt-rewards-ledger/internal/config"
	"github.com/receipt-rewards-ledger/internal/data/memory"
	mongorepo "github.com/receipt-rewards-ledger/internal/data/mongo"
	postgresrepo "github.com/receipt-rewards-ledger/internal/data/postgres"
	"github.com/receipt-rewards-ledger/internal/domain/ledger"
	"github.com/receipt-rewards-ledger/internal/logger"
	"github.com/receipt-rewards-ledger/internal/platform/messaging/producers"
	"github.com/receipt-rewards-ledger/internal/platform/persistence"
)

func main() {
	// Create base context with cancellation
	appCtx, cancelAppCtx := context.WithCancel(context.Background())
	defer cancelAppCtx()

	// Initialize configuration
	cfg, err := config.LoadConfig("api")
	if err != nil {
		// logger is not initialized yet, so we use fmt
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.NewLogger(cfg)

	// Initialize the ledger backend selected by configuration
	var (
		ledgerRepo ledger.Repository
		postgresDB *persistence.PostgresDB
		mongoDB    *persistence.MongoDB
	)
	switch cfg.Storage.Backend {
	case config.StorageBackendPostgres:
		postgresDB, err = persistence.NewPostgresDB(appCtx, log, &cfg.Postgres)
		if err != nil {
			log.Error("Failed to initialize PostgreSQL", "error", err)
			os.Exit(1)
		}
		ledgerRepo = postgresrepo.NewLedgerRepository(log, postgresDB)
	case config.StorageBackendMongo:
		mongoDB, err = persistence.NewMongoDB(appCtx, log, &cfg.MongoDB)
		if err != nil {
			log.Error("Failed to initialize MongoDB", "error", err)
			os.Exit(1)
		}
		ledgerRepo = mongorepo.NewLedgerRepository(log, mongoDB.Database())
	default:
		ledgerRepo = memory.NewLedgerRepository()
	}
	log.Info("Ledger storage initialized", "backend", cfg.Storage.Backend)

	// Initialize the optional scored-receipt event producer
	var producer producers.MessagePublisher
	if cfg.Kafka.Enabled {
		kafkaProducer, err := producers.NewReceiptScoredProducer(appCtx, log, &cfg.Kafka)
		if err != nil {
			log.Error("Failed to initialize Kafka producer", "error", err)
			os.Exit(1)
		}
		producer = kafkaProducer
	}

	// Initialize services
	receiptService := service.NewReceiptService(log, ledgerRepo, producer)

	// Initialize REST server
	server := api.NewServer(log, cfg, receiptService)
	log.Info("REST server initialized")

	// Create error channel for server errors
	errChan := make(chan error, 1)

	// Start server in goroutine
	go func() {
		log.Info("Starting HTTP server", "port", cfg.Server.Port)
		if err := server.Start(); err != nil {
			errChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	// Set up signal handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	// Wait for a shutdown signal or error
	var serverErr error
	select {
	case <-quit:
		log.Info("Shutdown signal received")
	case err := <-errChan:
		log.Error("Server error occurred", "error", err)
		serverErr = err
	}

	// Cancel the application context
	cancelAppCtx()

	// Create a shutdown context with timeout
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancelShutdown()

	// Graceful shutdown sequence
	log.Info("Starting graceful shutdown...")

	if err = server.Stop(shutdownCtx); err != nil {
		log.Error("Error during server shutdown", "error", err)
	}

	if producer != nil {
		if err = producer.Close(); err != nil {
			log.Error("Error closing Kafka producer", "error", err)
		}
	}

	if postgresDB != nil {
		postgresDB.Close()
	}

	if mongoDB != nil {
		if err = mongoDB.Close(shutdownCtx); err != nil {
			log.Error("Error closing MongoDB connection", "error", err)
		}
	}

	// Final status
	if serverErr != nil {
		log.Error("HTTP server shutdown with errors", "error", serverErr)
	}
	if err != nil {
		log.Error("Server shutdown completed with errors")
	} else {
		log.Info("Server shutdown completed successfully")
	}
}
