package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx/types"
)

// Audit event types written by the wallet core.
const (
	AuditTransactionCreated  = "transaction_created"
	AuditTransactionApproved = "transaction_approved"
	AuditTransactionRejected = "transaction_rejected"
	AuditTransferCreated     = "transfer_created"
	AuditIntegrityViolation  = "integrity_violation"
	AuditSettingsChanged     = "settings_changed"
)

// SuspiciousRiskThreshold is the risk score above which an audit event is
// queued for manual review.
const SuspiciousRiskThreshold = 70

// AuditEventDB is one append-only audit record. Rows are never updated or
// deleted by normal operation.
type AuditEventDB struct {
	AuditID       uuid.UUID      `json:"audit_id" db:"audit_id"`
	WalletID      *uuid.UUID     `json:"wallet_id,omitempty" db:"wallet_id"`
	TransactionID *uuid.UUID     `json:"transaction_id,omitempty" db:"transaction_id"`
	UserID        uuid.UUID      `json:"user_id" db:"user_id"` // Actor responsible for the event
	EventType     string         `json:"event_type" db:"event_type"`
	Description   string         `json:"description" db:"description"`
	Before        types.JSONText `json:"before,omitempty" db:"before_state"` // State snapshot before the event
	After         types.JSONText `json:"after,omitempty" db:"after_state"`   // State snapshot after the event
	RiskScore     int            `json:"risk_score" db:"risk_score"`
	CreatedAt     time.Time      `json:"created_at" db:"created_at"`
}

// Suspicious reports whether the event should land on the review queue.
func (e *AuditEventDB) Suspicious() bool {
	return e.RiskScore > SuspiciousRiskThreshold
}
