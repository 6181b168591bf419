// Package producers publishes scored-receipt events to Kafka for downstream
// consumers. The producer is optional; the scoring path never depends on it.
package producers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/receipt-rewards-ledger/internal/config"
)

// ReceiptScoredEvent is the message published after points are committed
// to the ledger
type ReceiptScoredEvent struct {
	ID       uuid.UUID `json:"id"`
	Points   int64     `json:"points"`
	ScoredAt time.Time `json:"scored_at"`
}

// ReceiptScoredProducer publishes ReceiptScoredEvent messages
type ReceiptScoredProducer struct {
	logger *slog.Logger
	writer KafkaWriter // Interface for testability
	topic  string
}

// NewReceiptScoredProducer creates the producer and ensures the topic exists
func NewReceiptScoredProducer(ctx context.Context, logger *slog.Logger, cfg *config.KafkaConfig) (*ReceiptScoredProducer, error) {
	if cfg.ReceiptScoredTopic == "" {
		return nil, fmt.Errorf("kafka receipt scored topic is not configured")
	}

	conn, err := kafka.Dial("tcp", cfg.Brokers)
	if err != nil {
		return nil, fmt.Errorf("failed to dial kafka for receipt scored producer: %w", err)
	}
	defer conn.Close()

	if err := createKafkaTopicIfNotExists(conn, cfg.ReceiptScoredTopic, cfg.NumPartitions, cfg.ReplicationFactor, logger); err != nil {
		return nil, fmt.Errorf("failed to ensure topic %s exists: %w", cfg.ReceiptScoredTopic, err)
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers),
		Topic:        cfg.ReceiptScoredTopic,
		Balancer:     &kafka.LeastBytes{},
		RequiredAcks: kafka.RequireOne,
		Async:        true, // Scoring responses never wait on the broker
		WriteTimeout: cfg.WriteTimeout,
		Completion: func(messages []kafka.Message, err error) {
			if err != nil {
				logger.Error("Failed to write messages asynchronously", "topic", cfg.ReceiptScoredTopic, "error", err, "count", len(messages))
			} else {
				logger.Debug("Successfully wrote messages asynchronously", "topic", cfg.ReceiptScoredTopic, "count", len(messages))
			}
		},
	}

	return &ReceiptScoredProducer{
		logger: logger,
		writer: writer,
		topic:  cfg.ReceiptScoredTopic,
	}, nil
}

// Publish marshals value as JSON and writes it under the given key
func (p *ReceiptScoredProducer) Publish(ctx context.Context, key string, value interface{}) error {
	jsonValue, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal receipt scored event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(key),
		Value: jsonValue,
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.logger.Error("Failed to publish receipt scored event",
			"topic", p.topic,
			"key", key,
			"error", err,
		)
		return fmt.Errorf("failed to publish receipt scored event to %s: %w", p.topic, err)
	}

	p.logger.Debug("Published receipt scored event",
		"topic", p.topic,
		"key", key,
	)
	return nil
}

func (p *ReceiptScoredProducer) Close() error {
	p.logger.Info("Closing receipt scored producer", "topic", p.topic)
	if err := p.writer.Close(); err != nil {
		return fmt.Errorf("failed to close kafka writer for topic %s: %w", p.topic, err)
	}
	return nil
}
