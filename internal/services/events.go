package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/finledger/wallet-ledger/internal/logger"
	"github.com/finledger/wallet-ledger/internal/models"
)

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// EventPublisher publishes terminal transaction states to the transaction
// topic. Publishing is best effort and happens only after the database scope
// has committed; failures are logged, never propagated.
type EventPublisher struct {
	writer KafkaWriter
}

func NewEventPublisher(writer KafkaWriter) *EventPublisher {
	return &EventPublisher{writer: writer}
}

// Publish sends one event keyed by transaction id.
func (p *EventPublisher) Publish(ctx context.Context, txn *models.TransactionDB) {
	if p == nil || p.writer == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "transaction_id", txn.TransactionID)
		return
	}

	event := models.TransactionEvent{
		TransactionID: txn.TransactionID,
		WalletID:      txn.WalletID,
		UserID:        txn.UserID,
		Amount:        txn.Amount,
		Type:          txn.Type,
		Status:        txn.Status,
		Timestamp:     time.Now().Unix(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal transaction event", "transaction_id", txn.TransactionID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(txn.TransactionID.String()),
		Value: data,
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish transaction event", "transaction_id", txn.TransactionID, "error", err)
	} else {
		logger.Log.Infow("Transaction event published", "transaction_id", txn.TransactionID, "status", txn.Status)
	}
}
