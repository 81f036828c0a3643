package models

import (
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx/types"
)

// Transfer leg directions stored in transaction metadata.
const (
	DirectionOutgoing = "outgoing"
	DirectionIncoming = "incoming"
)

// TxnMetadata is the structured part of a transaction's metadata column.
// Terminal transactions stay immutable except for annotations landing here.
type TxnMetadata struct {
	Direction          string         `json:"direction,omitempty"`              // Transfer leg direction
	CounterpartyWallet *uuid.UUID     `json:"counterparty_wallet_id,omitempty"` // Other wallet of a transfer
	TransferID         *uuid.UUID     `json:"transfer_id,omitempty"`            // Correlation id shared by both legs
	ApprovalChain      *ApprovalChain `json:"approval_chain,omitempty"`         // Chain computed at creation time
	RejectionReason    string         `json:"rejection_reason,omitempty"`
}

// JSON marshals the metadata for storage. Marshalling of this struct cannot
// fail, so the error is discarded.
func (m TxnMetadata) JSON() types.JSONText {
	b, _ := json.Marshal(m)
	return types.JSONText(b)
}

// ParseMetadata decodes a transaction's metadata column. An empty column
// yields the zero value.
func ParseMetadata(raw types.JSONText) (TxnMetadata, error) {
	var m TxnMetadata
	if len(raw) == 0 {
		return m, nil
	}
	err := json.Unmarshal(raw, &m)
	return m, err
}

// EffectiveType resolves a transaction to the direction the ledger applies:
// transfer legs become expense (outgoing) or income (incoming), every other
// type is itself.
func (t *TransactionDB) EffectiveType() (TransactionType, error) {
	if t.Type != TypeTransfer {
		return t.Type, nil
	}
	meta, err := ParseMetadata(t.Metadata)
	if err != nil {
		return "", err
	}
	switch meta.Direction {
	case DirectionOutgoing:
		return TypeExpense, nil
	case DirectionIncoming:
		return TypeIncome, nil
	}
	return "", ErrMissingDirection
}

// ErrMissingDirection means a transfer leg carries no direction metadata.
var ErrMissingDirection = errors.New("transfer leg has no direction metadata")
