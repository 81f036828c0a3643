package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/finledger/wallet-ledger/internal/models"
)

func activeWallet(balance float64) *models.WalletDB {
	return &models.WalletDB{
		Balance:          balance,
		AvailableBalance: balance,
		IsActive:         true,
	}
}

func TestLedger_Apply(t *testing.T) {
	ledger := NewLedger()

	tests := []struct {
		name          string
		txnType       models.TransactionType
		amount        float64
		wantBalance   float64
		wantAvailable float64
		wantErr       error
	}{
		{
			name:          "income credits both fields",
			txnType:       models.TypeIncome,
			amount:        250,
			wantBalance:   1250,
			wantAvailable: 1250,
		},
		{
			name:          "expense debits both fields",
			txnType:       models.TypeExpense,
			amount:        250,
			wantBalance:   750,
			wantAvailable: 750,
		},
		{
			name:          "refund credits like income",
			txnType:       models.TypeRefund,
			amount:        100,
			wantBalance:   1100,
			wantAvailable: 1100,
		},
		{
			name:          "negative adjustment debits",
			txnType:       models.TypeAdjustment,
			amount:        -300,
			wantBalance:   700,
			wantAvailable: 700,
		},
		{
			name:    "raw transfer type is rejected",
			txnType: models.TypeTransfer,
			amount:  100,
			wantErr: ErrInvalidType,
		},
		{
			name:    "unknown type is rejected",
			txnType: models.TransactionType("dividend"),
			amount:  100,
			wantErr: ErrInvalidType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wallet := activeWallet(1000)
			err := ledger.Apply(wallet, tt.txnType, tt.amount)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, 1000.0, wallet.Balance)
				assert.Equal(t, 1000.0, wallet.AvailableBalance)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantBalance, wallet.Balance)
			assert.Equal(t, tt.wantAvailable, wallet.AvailableBalance)
		})
	}
}

func TestLedger_HoldAndRelease(t *testing.T) {
	ledger := NewLedger()
	wallet := activeWallet(1000)

	ledger.Hold(wallet, 400)
	assert.Equal(t, 1000.0, wallet.Balance)
	assert.Equal(t, 600.0, wallet.AvailableBalance)
	assert.Equal(t, 400.0, wallet.PendingBalance)

	ledger.Release(wallet, 400)
	assert.Equal(t, 1000.0, wallet.Balance)
	assert.Equal(t, 1000.0, wallet.AvailableBalance)
	assert.Equal(t, 0.0, wallet.PendingBalance)
}

func TestLedger_HoldThenApproveLandsOnce(t *testing.T) {
	ledger := NewLedger()
	wallet := activeWallet(1000)

	ledger.Hold(wallet, 400)
	ledger.Release(wallet, 400)
	assert.NoError(t, ledger.Apply(wallet, models.TypeExpense, 400))

	assert.Equal(t, 600.0, wallet.Balance)
	assert.Equal(t, 600.0, wallet.AvailableBalance)
	assert.Equal(t, 0.0, wallet.PendingBalance)
}

func TestLedger_CanSpend(t *testing.T) {
	ledger := NewLedger()
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)
	daily := 500.0
	monthly := 2000.0

	tests := []struct {
		name    string
		mutate  func(w *models.WalletDB)
		amount  float64
		daily   float64
		monthly float64
		wantErr error
	}{
		{
			name:   "spend within available balance",
			amount: 1000,
		},
		{
			name:    "inactive wallet",
			mutate:  func(w *models.WalletDB) { w.IsActive = false },
			amount:  10,
			wantErr: ErrWalletInactive,
		},
		{
			name:    "locked wallet",
			mutate:  func(w *models.WalletDB) { w.IsLocked = true },
			amount:  10,
			wantErr: ErrWalletLocked,
		},
		{
			name: "lock expired in the past",
			mutate: func(w *models.WalletDB) {
				w.IsLocked = true
				w.LockedUntil = &past
			},
			amount: 10,
		},
		{
			name: "lock expires in the future",
			mutate: func(w *models.WalletDB) {
				w.IsLocked = true
				w.LockedUntil = &future
			},
			amount:  10,
			wantErr: ErrWalletLocked,
		},
		{
			name:    "insufficient available funds",
			amount:  1001,
			wantErr: ErrInsufficientFunds,
		},
		{
			name: "held funds are not spendable",
			mutate: func(w *models.WalletDB) {
				w.AvailableBalance = 200
				w.PendingBalance = 800
			},
			amount:  300,
			wantErr: ErrInsufficientFunds,
		},
		{
			name:   "overdraft allowed when wallet permits negative",
			mutate: func(w *models.WalletDB) { w.AllowNegative = true },
			amount: 1500,
		},
		{
			name:    "daily limit exceeded",
			mutate:  func(w *models.WalletDB) { w.DailyLimit = &daily },
			amount:  200,
			daily:   400,
			wantErr: ErrDailyLimitExceeded,
		},
		{
			name:   "spend exactly at daily limit",
			mutate: func(w *models.WalletDB) { w.DailyLimit = &daily },
			amount: 100,
			daily:  400,
		},
		{
			name:    "monthly limit exceeded",
			mutate:  func(w *models.WalletDB) { w.MonthlyLimit = &monthly },
			amount:  200,
			monthly: 1900,
			wantErr: ErrMonthlyLimitExceeded,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wallet := activeWallet(1000)
			if tt.mutate != nil {
				tt.mutate(wallet)
			}
			err := ledger.CanSpend(wallet, tt.amount, tt.daily, tt.monthly, now)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLedger_CanReceive(t *testing.T) {
	ledger := NewLedger()
	now := time.Now().UTC()

	wallet := activeWallet(0)
	assert.NoError(t, ledger.CanReceive(wallet, now))

	wallet.IsActive = false
	assert.ErrorIs(t, ledger.CanReceive(wallet, now), ErrWalletInactive)

	wallet.IsActive = true
	wallet.IsLocked = true
	assert.ErrorIs(t, ledger.CanReceive(wallet, now), ErrWalletLocked)
}
