package models

import "github.com/google/uuid"

// TransactionEvent is the message published to the transaction topic when a
// transaction reaches a terminal state.
type TransactionEvent struct {
	TransactionID uuid.UUID         `json:"transaction_id"`
	WalletID      uuid.UUID         `json:"wallet_id"`
	UserID        uuid.UUID         `json:"user_id"`
	Amount        float64           `json:"amount"`
	Type          TransactionType   `json:"transaction_type"`
	Status        TransactionStatus `json:"status"`
	Timestamp     int64             `json:"timestamp"`
}
