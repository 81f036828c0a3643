package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/finledger/wallet-ledger/internal/logger"
	"github.com/finledger/wallet-ledger/internal/models"
	"github.com/finledger/wallet-ledger/internal/repositories"
)

// TransactionLister lists a wallet's transactions.
type TransactionLister interface {
	ListByWallet(ctx context.Context, walletID uuid.UUID, limit int) ([]models.TransactionDB, error)
}

// WalletService handles single-wallet operations: deposits (income),
// withdrawals (expense, approval gated), balance reads and history.
type WalletService struct {
	db       *sqlx.DB
	wallets  WalletReader
	locker   WalletLocker
	txns     TransactionSaver
	lister   TransactionLister
	sums     ExpenseSummer
	ledger   *Ledger
	signer   TransactionSigner
	approval ApprovalDecider
	audits   Auditor
	events   TransactionPublisher
}

func NewWalletService(
	db *sqlx.DB,
	wallets WalletReader,
	locker WalletLocker,
	txns TransactionSaver,
	lister TransactionLister,
	sums ExpenseSummer,
	ledger *Ledger,
	signer TransactionSigner,
	approval ApprovalDecider,
	audits Auditor,
	events TransactionPublisher,
) *WalletService {
	return &WalletService{
		db:       db,
		wallets:  wallets,
		locker:   locker,
		txns:     txns,
		lister:   lister,
		sums:     sums,
		ledger:   ledger,
		signer:   signer,
		approval: approval,
		audits:   audits,
		events:   events,
	}
}

// Deposit credits the wallet with an income transaction. Deposits apply
// immediately; the Approval Gate only holds spends.
func (s *WalletService) Deposit(ctx context.Context, userID, walletID uuid.UUID, amount float64, description string) (*models.TransactionDB, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	wallet, err := s.wallets.GetByID(ctx, walletID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if err := s.ledger.CanReceive(wallet, now); err != nil {
		return nil, err
	}

	txn := s.buildTransaction(userID, walletID, amount, models.TypeIncome, description, false, nil, now)

	err = repositories.WithTx(ctx, s.db, func(tx *sqlx.Tx) error {
		locked, err := s.locker.GetForUpdate(ctx, tx, walletID)
		if err != nil {
			return err
		}

		before := balanceSnapshot(locked)
		if err := s.ledger.Apply(locked, models.TypeIncome, amount); err != nil {
			return err
		}
		if err := s.txns.Save(ctx, tx, txn); err != nil {
			return err
		}
		if err := s.locker.UpdateBalances(ctx, tx, locked); err != nil {
			return err
		}

		return s.audits.Log(ctx, tx, &models.AuditEventDB{
			AuditID:       uuid.New(),
			WalletID:      &walletID,
			TransactionID: &txn.TransactionID,
			UserID:        userID,
			EventType:     models.AuditTransactionCreated,
			Description:   fmt.Sprintf("deposit of %.2f %s", amount, locked.Currency),
			Before:        before,
			After:         balanceSnapshot(locked),
		})
	})
	if err != nil {
		logger.Log.Errorw("deposit failed", "wallet_id", walletID, "amount", amount, "error", err)
		return nil, err
	}

	s.events.Publish(ctx, txn)
	return txn, nil
}

// Withdraw debits the wallet with an expense transaction. When the Approval
// Gate holds it, the transaction is created pending with the amount held on
// the available balance; otherwise the effect applies immediately.
func (s *WalletService) Withdraw(ctx context.Context, userID, walletID uuid.UUID, amount float64, description string) (*models.TransactionDB, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	wallet, err := s.wallets.GetByID(ctx, walletID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	dailySpent, monthlySpent, err := s.periodSpends(ctx, walletID, now)
	if err != nil {
		return nil, err
	}
	if err := s.ledger.CanSpend(wallet, amount, dailySpent, monthlySpent, now); err != nil {
		return nil, err
	}

	requiresApproval, chain := s.approval.Decide(wallet, amount)
	txn := s.buildTransaction(userID, walletID, amount, models.TypeExpense, description, requiresApproval, chain, now)

	err = repositories.WithTx(ctx, s.db, func(tx *sqlx.Tx) error {
		locked, err := s.locker.GetForUpdate(ctx, tx, walletID)
		if err != nil {
			return err
		}

		// The pre-lock policy check can be stale by now; re-read the
		// period sums so a spend committed in between still counts
		// against the limits.
		dailySpent, monthlySpent, err = s.periodSpends(ctx, walletID, now)
		if err != nil {
			return err
		}
		if err := s.ledger.CanSpend(locked, amount, dailySpent, monthlySpent, now); err != nil {
			return err
		}

		before := balanceSnapshot(locked)
		if requiresApproval {
			s.ledger.Hold(locked, amount)
		} else {
			if err := s.ledger.Apply(locked, models.TypeExpense, amount); err != nil {
				return err
			}
		}
		if err := s.txns.Save(ctx, tx, txn); err != nil {
			return err
		}
		if err := s.locker.UpdateBalances(ctx, tx, locked); err != nil {
			return err
		}

		return s.audits.Log(ctx, tx, &models.AuditEventDB{
			AuditID:       uuid.New(),
			WalletID:      &walletID,
			TransactionID: &txn.TransactionID,
			UserID:        userID,
			EventType:     models.AuditTransactionCreated,
			Description:   fmt.Sprintf("withdrawal of %.2f %s (pending=%t)", amount, locked.Currency, requiresApproval),
			Before:        before,
			After:         balanceSnapshot(locked),
		})
	})
	if err != nil {
		logger.Log.Errorw("withdrawal failed", "wallet_id", walletID, "amount", amount, "error", err)
		return nil, err
	}

	if !requiresApproval {
		s.events.Publish(ctx, txn)
	}
	return txn, nil
}

// GetWallet returns the wallet's current state.
func (s *WalletService) GetWallet(ctx context.Context, walletID uuid.UUID) (*models.WalletDB, error) {
	return s.wallets.GetByID(ctx, walletID)
}

// ListTransactions returns the wallet's recent transactions.
func (s *WalletService) ListTransactions(ctx context.Context, walletID uuid.UUID, limit int) ([]models.TransactionDB, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return s.lister.ListByWallet(ctx, walletID, limit)
}

func (s *WalletService) buildTransaction(userID, walletID uuid.UUID, amount float64, txnType models.TransactionType, description string, requiresApproval bool, chain *models.ApprovalChain, now time.Time) *models.TransactionDB {
	status := models.StatusCompleted
	if requiresApproval {
		status = models.StatusPending
	}

	txn := &models.TransactionDB{
		TransactionID:    uuid.New(),
		WalletID:         walletID,
		UserID:           userID,
		Amount:           amount,
		Type:             txnType,
		Status:           status,
		Reference:        uuid.New().String(),
		Description:      description,
		RequiresApproval: requiresApproval,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if chain != nil {
		txn.Metadata = models.TxnMetadata{ApprovalChain: chain}.JSON()
	}

	s.signer.Attach(txn)
	return txn
}

func (s *WalletService) periodSpends(ctx context.Context, walletID uuid.UUID, now time.Time) (float64, float64, error) {
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	dailySpent, err := s.sums.SumExpensesSince(ctx, walletID, dayStart)
	if err != nil {
		return 0, 0, err
	}
	monthlySpent, err := s.sums.SumExpensesSince(ctx, walletID, monthStart)
	if err != nil {
		return 0, 0, err
	}
	return dailySpent, monthlySpent, nil
}
