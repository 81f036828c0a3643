package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/finledger/wallet-ledger/internal/logger"
	"github.com/finledger/wallet-ledger/internal/models"
)

// AuditWriteRepository appends immutable audit records. When a transaction
// handle is supplied the append shares the caller's atomic scope, so a failed
// append fails the balance mutation it documents.
type AuditWriteRepository struct {
	db *sqlx.DB
}

func NewAuditWriteRepository(db *sqlx.DB) *AuditWriteRepository {
	return &AuditWriteRepository{db: db}
}

// Append inserts one audit record.
func (r *AuditWriteRepository) Append(ctx context.Context, tx *sqlx.Tx, event *models.AuditEventDB) error {
	const query = `
		INSERT INTO audit_events (
			audit_id, wallet_id, transaction_id, user_id, event_type,
			description, before_state, after_state, risk_score, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
	`

	if event.AuditID == uuid.Nil {
		event.AuditID = uuid.New()
	}

	var exec execer = r.db
	if tx != nil {
		exec = tx
	}

	_, err := exec.ExecContext(ctx, query,
		event.AuditID, event.WalletID, event.TransactionID, event.UserID,
		event.EventType, event.Description, event.Before, event.After, event.RiskScore)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{event.AuditID, event.EventType, event.RiskScore},
		"error", err,
	)

	return err
}
