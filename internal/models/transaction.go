package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx/types"
)

// TransactionType classifies the direction a transaction's amount takes
// against its wallet's balance.
type TransactionType string

// Supported transaction types.
const (
	TypeIncome     TransactionType = "income"
	TypeExpense    TransactionType = "expense"
	TypeTransfer   TransactionType = "transfer"
	TypeRefund     TransactionType = "refund"
	TypeAdjustment TransactionType = "adjustment"
)

// Valid reports whether t is one of the supported transaction types.
func (t TransactionType) Valid() bool {
	switch t {
	case TypeIncome, TypeExpense, TypeTransfer, TypeRefund, TypeAdjustment:
		return true
	}
	return false
}

// TransactionStatus is the lifecycle state of a transaction.
type TransactionStatus string

// Transaction lifecycle states. A transaction's effect is applied to its
// wallet exactly once, on the pending -> completed transition (or at creation
// when no approval is required).
const (
	StatusPending    TransactionStatus = "pending"
	StatusProcessing TransactionStatus = "processing"
	StatusCompleted  TransactionStatus = "completed"
	StatusFailed     TransactionStatus = "failed"
	StatusCancelled  TransactionStatus = "cancelled"
)

// Terminal reports whether the status permits no further transitions.
func (s TransactionStatus) Terminal() bool {
	switch s {
	case StatusCompleted, StatusFailed, StatusCancelled:
		return true
	}
	return false
}

// TransactionDB represents a transaction row in the database.
//
// Amount is always a positive magnitude for income/expense/transfer/refund;
// the sign of the balance effect is carried by Type. Adjustments may carry a
// negative Amount.
type TransactionDB struct {
	TransactionID   uuid.UUID         `json:"transaction_id" db:"transaction_id"`
	WalletID        uuid.UUID         `json:"wallet_id" db:"wallet_id"`
	UserID          uuid.UUID         `json:"user_id" db:"user_id"` // Actor who initiated the transaction
	Amount          float64           `json:"amount" db:"amount"`
	Type            TransactionType   `json:"transaction_type" db:"transaction_type"`
	Status          TransactionStatus `json:"status" db:"status"`
	Reference       string            `json:"reference" db:"reference"` // External correlation reference (e.g. transfer group id)
	Description     string            `json:"description" db:"description"`
	RequiresApproval bool             `json:"requires_approval" db:"requires_approval"`
	ApprovedBy      *uuid.UUID        `json:"approved_by,omitempty" db:"approved_by"`
	ApprovedAt      *time.Time        `json:"approved_at,omitempty" db:"approved_at"`
	LinkedID        *uuid.UUID        `json:"linked_transaction_id,omitempty" db:"linked_transaction_id"` // Sibling leg of a transfer
	Hash            string            `json:"transaction_hash" db:"transaction_hash"`
	Signature       string            `json:"digital_signature" db:"digital_signature"`
	Metadata        types.JSONText    `json:"metadata,omitempty" db:"metadata"`
	CreatedAt       time.Time         `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at" db:"updated_at"`
}
