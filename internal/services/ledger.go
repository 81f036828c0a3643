package services

import (
	"time"

	"github.com/finledger/wallet-ledger/internal/models"
)

// Ledger owns the rule for applying a transaction's effect to a wallet's
// balance fields. Every method is a pure in-memory mutation: no I/O, no
// locking. Callers must hold the wallet's row lock and must not apply the
// same transaction twice (enforced by the pending-status re-check upstream).
type Ledger struct{}

func NewLedger() *Ledger {
	return &Ledger{}
}

// Apply mutates exactly Balance and AvailableBalance according to the
// transaction type. Transfer legs are resolved by the coordinator into an
// income or expense direction before reaching the ledger, so a raw transfer
// type here is a programming error. The switch is exhaustive over the closed
// enum: a new type cannot fall through silently.
func (l *Ledger) Apply(wallet *models.WalletDB, txnType models.TransactionType, amount float64) error {
	switch txnType {
	case models.TypeIncome, models.TypeRefund:
		wallet.Balance += amount
		wallet.AvailableBalance += amount
	case models.TypeExpense:
		wallet.Balance -= amount
		wallet.AvailableBalance -= amount
	case models.TypeAdjustment:
		// Adjustments carry their own sign.
		wallet.Balance += amount
		wallet.AvailableBalance += amount
	case models.TypeTransfer:
		return ErrInvalidType
	default:
		return ErrInvalidType
	}
	return nil
}

// Hold reserves funds for a pending expense-direction transaction: the
// settled balance is untouched until approval, but the amount stops being
// available and is tracked as pending.
func (l *Ledger) Hold(wallet *models.WalletDB, amount float64) {
	wallet.AvailableBalance -= amount
	wallet.PendingBalance += amount
}

// Release undoes a Hold when the pending transaction is resolved. The
// approve path calls Release before Apply so the expense lands on both
// balance fields exactly once.
func (l *Ledger) Release(wallet *models.WalletDB, amount float64) {
	wallet.AvailableBalance += amount
	wallet.PendingBalance -= amount
}

// CanSpend checks affordability and spending policy for an expense-direction
// amount. Affordability is always judged against AvailableBalance, so funds
// held by pending transactions cannot be spent twice. dailySpent and
// monthlySpent are the wallet's period-to-date expense volumes.
func (l *Ledger) CanSpend(wallet *models.WalletDB, amount, dailySpent, monthlySpent float64, now time.Time) error {
	if !wallet.IsActive {
		return ErrWalletInactive
	}
	if wallet.Locked(now) {
		return ErrWalletLocked
	}
	if wallet.AvailableBalance-amount < 0 && !wallet.AllowNegative {
		return ErrInsufficientFunds
	}
	if wallet.DailyLimit != nil && dailySpent+amount > *wallet.DailyLimit {
		return ErrDailyLimitExceeded
	}
	if wallet.MonthlyLimit != nil && monthlySpent+amount > *wallet.MonthlyLimit {
		return ErrMonthlyLimitExceeded
	}
	return nil
}

// CanReceive checks that a wallet may accept income-direction funds.
func (l *Ledger) CanReceive(wallet *models.WalletDB, now time.Time) error {
	if !wallet.IsActive {
		return ErrWalletInactive
	}
	if wallet.Locked(now) {
		return ErrWalletLocked
	}
	return nil
}
