package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/finledger/wallet-ledger/internal/logger"
	"github.com/finledger/wallet-ledger/internal/models"
	"github.com/finledger/wallet-ledger/internal/repositories"
)

// WalletReader reads wallets outside locked scopes.
type WalletReader interface {
	GetByID(ctx context.Context, walletID uuid.UUID) (*models.WalletDB, error)
}

// TransactionSaver persists new transaction rows inside a locked scope.
type TransactionSaver interface {
	Save(ctx context.Context, tx *sqlx.Tx, txn *models.TransactionDB) error
}

// ExpenseSummer provides period-to-date expense volumes for limit checks.
type ExpenseSummer interface {
	SumExpensesSince(ctx context.Context, walletID uuid.UUID, since time.Time) (float64, error)
}

// TransactionSigner attaches the content hash and signature at creation time.
type TransactionSigner interface {
	Attach(txn *models.TransactionDB)
}

// ApprovalDecider decides whether a spend must be held pending.
type ApprovalDecider interface {
	Decide(wallet *models.WalletDB, amount float64) (bool, *models.ApprovalChain)
}

// TransferService creates cryptographically linked debit/credit pairs across
// two wallets and applies both atomically under the wallet row locks.
type TransferService struct {
	db       *sqlx.DB
	wallets  WalletReader
	locker   WalletLocker
	txns     TransactionSaver
	sums     ExpenseSummer
	ledger   *Ledger
	signer   TransactionSigner
	approval ApprovalDecider
	audits   Auditor
	events   TransactionPublisher
}

func NewTransferService(
	db *sqlx.DB,
	wallets WalletReader,
	locker WalletLocker,
	txns TransactionSaver,
	sums ExpenseSummer,
	ledger *Ledger,
	signer TransactionSigner,
	approval ApprovalDecider,
	audits Auditor,
	events TransactionPublisher,
) *TransferService {
	return &TransferService{
		db:       db,
		wallets:  wallets,
		locker:   locker,
		txns:     txns,
		sums:     sums,
		ledger:   ledger,
		signer:   signer,
		approval: approval,
		audits:   audits,
		events:   events,
	}
}

// Transfer moves amount from the source wallet to the target wallet as a
// linked pair of transactions sharing one correlation id and timestamp. When
// the Approval Gate holds the transfer, both legs are created pending and the
// amount is held on the source wallet; otherwise both ledgers are applied
// atomically with both locks acquired (ascending id order) before either
// mutation. Both legs are returned regardless of pending/completed state.
func (s *TransferService) Transfer(ctx context.Context, userID, sourceID, targetID uuid.UUID, amount float64, description string) (*models.TransactionDB, *models.TransactionDB, error) {
	if amount <= 0 {
		return nil, nil, ErrInvalidAmount
	}
	if sourceID == targetID {
		return nil, nil, ErrSameWallet
	}

	source, err := s.wallets.GetByID(ctx, sourceID)
	if err != nil {
		return nil, nil, err
	}
	target, err := s.wallets.GetByID(ctx, targetID)
	if err != nil {
		return nil, nil, err
	}
	if source.Currency != target.Currency {
		return nil, nil, ErrCurrencyMismatch
	}

	now := time.Now().UTC()
	if err := s.ledger.CanReceive(target, now); err != nil {
		return nil, nil, err
	}
	if err := s.checkSpendPolicy(ctx, source, amount, now); err != nil {
		return nil, nil, err
	}

	requiresApproval, chain := s.approval.Decide(source, amount)
	outgoing, incoming := s.buildLegs(userID, source, target, amount, description, requiresApproval, chain, now)

	err = repositories.WithTx(ctx, s.db, func(tx *sqlx.Tx) error {
		wallets, err := s.lockPair(ctx, tx, sourceID, targetID)
		if err != nil {
			return err
		}
		lockedSource := wallets[sourceID]
		lockedTarget := wallets[targetID]

		// The pre-lock affordability check can be stale by now.
		if err := s.checkSpendPolicy(ctx, lockedSource, amount, now); err != nil {
			return err
		}

		if err := s.txns.Save(ctx, tx, outgoing); err != nil {
			return err
		}
		if err := s.txns.Save(ctx, tx, incoming); err != nil {
			return err
		}

		sourceBefore := balanceSnapshot(lockedSource)
		targetBefore := balanceSnapshot(lockedTarget)

		if requiresApproval {
			s.ledger.Hold(lockedSource, amount)
			if err := s.locker.UpdateBalances(ctx, tx, lockedSource); err != nil {
				return err
			}
		} else {
			if err := s.ledger.Apply(lockedSource, models.TypeExpense, amount); err != nil {
				return err
			}
			if err := s.ledger.Apply(lockedTarget, models.TypeIncome, amount); err != nil {
				return err
			}
			if err := s.locker.UpdateBalances(ctx, tx, lockedSource); err != nil {
				return err
			}
			if err := s.locker.UpdateBalances(ctx, tx, lockedTarget); err != nil {
				return err
			}
		}

		if err := s.audits.Log(ctx, tx, &models.AuditEventDB{
			AuditID:       uuid.New(),
			WalletID:      &sourceID,
			TransactionID: &outgoing.TransactionID,
			UserID:        userID,
			EventType:     models.AuditTransferCreated,
			Description:   fmt.Sprintf("transfer of %.2f %s to wallet %s (pending=%t)", amount, lockedSource.Currency, targetID, requiresApproval),
			Before:        sourceBefore,
			After:         balanceSnapshot(lockedSource),
		}); err != nil {
			return err
		}
		return s.audits.Log(ctx, tx, &models.AuditEventDB{
			AuditID:       uuid.New(),
			WalletID:      &targetID,
			TransactionID: &incoming.TransactionID,
			UserID:        userID,
			EventType:     models.AuditTransactionCreated,
			Description:   fmt.Sprintf("incoming transfer of %.2f %s from wallet %s", amount, lockedTarget.Currency, sourceID),
			Before:        targetBefore,
			After:         balanceSnapshot(lockedTarget),
		})
	})
	if err != nil {
		logger.Log.Errorw("transfer failed", "source", sourceID, "target", targetID, "amount", amount, "error", err)
		return nil, nil, err
	}

	if !requiresApproval {
		s.events.Publish(ctx, outgoing)
		s.events.Publish(ctx, incoming)
	}
	return outgoing, incoming, nil
}

// checkSpendPolicy runs the affordability and limit checks against the given
// wallet snapshot.
func (s *TransferService) checkSpendPolicy(ctx context.Context, wallet *models.WalletDB, amount float64, now time.Time) error {
	dailySpent, monthlySpent, err := s.periodSpends(ctx, wallet.WalletID, now)
	if err != nil {
		return err
	}
	return s.ledger.CanSpend(wallet, amount, dailySpent, monthlySpent, now)
}

func (s *TransferService) periodSpends(ctx context.Context, walletID uuid.UUID, now time.Time) (float64, float64, error) {
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

// buildLegs constructs both transfer legs with a shared correlation id and
// timestamp, links them bidirectionally, and signs each leg with the link
// bound into the signature.
func (s *TransferService) buildLegs(userID uuid.UUID, source, target *models.WalletDB, amount float64, description string, requiresApproval bool, chain *models.ApprovalChain, now time.Time) (*models.TransactionDB, *models.TransactionDB) {
	transferID := uuid.New()
	status := models.StatusCompleted
	if requiresApproval {
		status = models.StatusPending
	}

	outgoing := &models.TransactionDB{
		TransactionID:    uuid.New(),
		WalletID:         source.WalletID,
		UserID:           userID,
		Amount:           amount,
		Type:             models.TypeTransfer,
		Status:           status,
		Reference:        transferID.String(),
		Description:      description,
		RequiresApproval: requiresApproval,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	incoming := &models.TransactionDB{
		TransactionID:    uuid.New(),
		WalletID:         target.WalletID,
		UserID:           userID,
		Amount:           amount,
		Type:             models.TypeTransfer,
		Status:           status,
		Reference:        transferID.String(),
		Description:      description,
		RequiresApproval: requiresApproval,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	outgoing.LinkedID = &incoming.TransactionID
	incoming.LinkedID = &outgoing.TransactionID

	outgoing.Metadata = models.TxnMetadata{
		Direction:          models.DirectionOutgoing,
		CounterpartyWallet: &target.WalletID,
		TransferID:         &transferID,
		ApprovalChain:      chain,
	}.JSON()
	incoming.Metadata = models.TxnMetadata{
		Direction:          models.DirectionIncoming,
		CounterpartyWallet: &source.WalletID,
		TransferID:         &transferID,
	}.JSON()

	s.signer.Attach(outgoing)
	s.signer.Attach(incoming)
	return outgoing, incoming
}

// lockPair acquires both wallet locks in ascending id order.
func (s *TransferService) lockPair(ctx context.Context, tx *sqlx.Tx, a, b uuid.UUID) (map[uuid.UUID]*models.WalletDB, error) {
	ids := []uuid.UUID{a, b}
	sort.Slice(ids, func(i, j int) bool {
		return ids[i].String() < ids[j].String()
	})

	wallets := make(map[uuid.UUID]*models.WalletDB, 2)
	for _, id := range ids {
		wallet, err := s.locker.GetForUpdate(ctx, tx, id)
		if err != nil {
			return nil, err
		}
		wallets[id] = wallet
	}
	return wallets, nil
}
