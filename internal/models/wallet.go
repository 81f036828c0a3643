package models

import (
	"time"

	"github.com/google/uuid"
)

// WalletDB represents a wallet row in the database.
type WalletDB struct {
	WalletID         uuid.UUID  `json:"wallet_id" db:"wallet_id"`                   // Unique wallet identifier
	UserID           uuid.UUID  `json:"user_id" db:"user_id"`                       // Identifier of the wallet's owner
	Currency         string     `json:"currency" db:"currency"`                     // Currency code (e.g., USD, RUB, EUR)
	Balance          float64    `json:"balance" db:"balance"`                       // Settled balance
	AvailableBalance float64    `json:"available_balance" db:"available_balance"`   // Settled balance minus pending holds
	PendingBalance   float64    `json:"pending_balance" db:"pending_balance"`       // Sum of amounts held by pending transactions
	IsActive         bool       `json:"is_active" db:"is_active"`                   // Soft-deactivation flag; inactive wallets refuse operations
	IsLocked         bool       `json:"is_locked" db:"is_locked"`                   // Administrative lock flag
	LockedUntil      *time.Time `json:"locked_until,omitempty" db:"locked_until"`   // Lock expiry; nil means the flag alone decides
	DailyLimit       *float64   `json:"daily_limit,omitempty" db:"daily_limit"`     // Max expense volume per calendar day, nil = unlimited
	MonthlyLimit     *float64   `json:"monthly_limit,omitempty" db:"monthly_limit"` // Max expense volume per calendar month, nil = unlimited
	AllowNegative    bool       `json:"allow_negative_balance" db:"allow_negative_balance"`
	RequireApproval  bool       `json:"require_approval" db:"require_approval"` // Whether spends above ApprovalLimit need approval
	ApprovalLimit    *float64   `json:"approval_limit,omitempty" db:"approval_limit"`
	CreatedAt        time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at" db:"updated_at"`
}

// Locked reports whether the wallet currently refuses balance mutations.
// An expired LockedUntil counts as unlocked even if IsLocked is still set.
func (w *WalletDB) Locked(now time.Time) bool {
	if !w.IsLocked {
		return false
	}
	if w.LockedUntil != nil && w.LockedUntil.Before(now) {
		return false
	}
	return true
}
