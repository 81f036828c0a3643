package handlers

import (
	"time"

	"github.com/google/uuid"

	"github.com/finledger/wallet-ledger/internal/models"
)

// TransactionView is the wire representation of a transaction
// swagger:model TransactionView
type TransactionView struct {
	// Transaction id
	TransactionID uuid.UUID `json:"transaction_id"`

	// Wallet id
	WalletID uuid.UUID `json:"wallet_id"`

	// Amount
	// default: 100.0
	Amount float64 `json:"amount"`

	// Transaction type
	// default: expense
	Type string `json:"transaction_type"`

	// Transaction status
	// default: completed
	Status string `json:"status"`

	// Unique reference
	Reference string `json:"reference"`

	// Description
	Description string `json:"description,omitempty"`

	// Whether the transaction is held for approval
	RequiresApproval bool `json:"requires_approval"`

	// Linked counter-leg id for transfers
	LinkedID *uuid.UUID `json:"linked_transaction_id,omitempty"`

	// Content hash (hex)
	Hash string `json:"transaction_hash"`

	// Creation time
	CreatedAt time.Time `json:"created_at"`
}

func newTransactionView(txn *models.TransactionDB) TransactionView {
	return TransactionView{
		TransactionID:    txn.TransactionID,
		WalletID:         txn.WalletID,
		Amount:           txn.Amount,
		Type:             string(txn.Type),
		Status:           string(txn.Status),
		Reference:        txn.Reference,
		Description:      txn.Description,
		RequiresApproval: txn.RequiresApproval,
		LinkedID:         txn.LinkedID,
		Hash:             txn.Hash,
		CreatedAt:        txn.CreatedAt,
	}
}
