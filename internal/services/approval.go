package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/jmoiron/sqlx/types"

	"github.com/finledger/wallet-ledger/internal/logger"
	"github.com/finledger/wallet-ledger/internal/models"
	"github.com/finledger/wallet-ledger/internal/repositories"
)

// TransactionReader reads transactions outside locked scopes.
type TransactionReader interface {
	GetByID(ctx context.Context, txnID uuid.UUID) (*models.TransactionDB, error)
}

// TransactionLocker re-fetches and resolves transactions inside a locked scope.
type TransactionLocker interface {
	GetForUpdate(ctx context.Context, tx *sqlx.Tx, txnID uuid.UUID) (*models.TransactionDB, error)
	Resolve(ctx context.Context, tx *sqlx.Tx, txn *models.TransactionDB) error
}

// WalletLocker acquires wallet row locks and persists balance mutations.
type WalletLocker interface {
	GetForUpdate(ctx context.Context, tx *sqlx.Tx, walletID uuid.UUID) (*models.WalletDB, error)
	UpdateBalances(ctx context.Context, tx *sqlx.Tx, wallet *models.WalletDB) error
}

// IntegrityVerifier authenticates stored transactions.
type IntegrityVerifier interface {
	Verify(txn *models.TransactionDB) bool
}

// Auditor records balance-affecting decisions.
type Auditor interface {
	Log(ctx context.Context, tx *sqlx.Tx, event *models.AuditEventDB) error
	LogSecurityEvent(ctx context.Context, event *models.AuditEventDB)
	EnqueueReview(ctx context.Context, event *models.AuditEventDB)
}

// TransactionPublisher emits terminal transaction states.
type TransactionPublisher interface {
	Publish(ctx context.Context, txn *models.TransactionDB)
}

// ApprovalService decides whether transactions must be held for approval and
// resolves pending transactions under the wallet row lock.
type ApprovalService struct {
	db        *sqlx.DB
	txnReader TransactionReader
	txnWriter TransactionLocker
	wallets   WalletLocker
	ledger    *Ledger
	signer    IntegrityVerifier
	audits    Auditor
	events    TransactionPublisher
}

func NewApprovalService(
	db *sqlx.DB,
	txnReader TransactionReader,
	txnWriter TransactionLocker,
	wallets WalletLocker,
	ledger *Ledger,
	signer IntegrityVerifier,
	audits Auditor,
	events TransactionPublisher,
) *ApprovalService {
	return &ApprovalService{
		db:        db,
		txnReader: txnReader,
		txnWriter: txnWriter,
		wallets:   wallets,
		ledger:    ledger,
		signer:    signer,
		audits:    audits,
		events:    events,
	}
}

// Decide reports whether a spend of amount from the wallet must be held
// pending, and which approval chain applies. A spend exactly at the approval
// limit needs no approval; one unit above does.
func (s *ApprovalService) Decide(wallet *models.WalletDB, amount float64) (bool, *models.ApprovalChain) {
	if !wallet.RequireApproval || wallet.ApprovalLimit == nil || amount <= *wallet.ApprovalLimit {
		return false, nil
	}
	return true, models.ChainForAmount(amount)
}

// Approve applies a pending transaction's balance effect. It verifies the
// record's integrity (every leg, re-verified under the lock so a record
// altered in storage is never applied), re-checks pending status, applies
// the ledger to the wallet (and to the linked wallet for transfer legs, both
// locks held before either mutation), stamps the approver, and audits — all
// in one atomic scope. Returns ErrTransactionNotPending when another actor
// resolved the transaction first.
func (s *ApprovalService) Approve(ctx context.Context, txnID, approver uuid.UUID) (*models.TransactionDB, error) {
	txn, err := s.txnReader.GetByID(ctx, txnID)
	if err != nil {
		return nil, err
	}
	if !txn.RequiresApproval {
		return nil, ErrApprovalNotRequired
	}
	if txn.Status != models.StatusPending {
		return nil, ErrTransactionNotPending
	}
	if !s.signer.Verify(txn) {
		s.reportIntegrityViolation(ctx, txn, approver)
		return nil, ErrIntegrityCheckFailed
	}

	linked, err := s.loadLinked(ctx, txn)
	if err != nil {
		return nil, err
	}

	var resolved []*models.TransactionDB
	tampered := txn
	now := time.Now().UTC()

	err = repositories.WithTx(ctx, s.db, func(tx *sqlx.Tx) error {
		wallets, err := s.lockWallets(ctx, tx, walletSet(txn, linked))
		if err != nil {
			return err
		}

		lockedTxn, err := s.recheckPending(ctx, tx, txn.TransactionID)
		if err != nil {
			return err
		}
		if !s.signer.Verify(lockedTxn) {
			tampered = lockedTxn
			return ErrIntegrityCheckFailed
		}

		if err := s.applyLeg(ctx, tx, lockedTxn, wallets, approver, now); err != nil {
			return err
		}
		resolved = append(resolved, lockedTxn)

		if linked != nil {
			lockedLinked, err := s.recheckPending(ctx, tx, linked.TransactionID)
			if err != nil {
				return err
			}
			if !s.signer.Verify(lockedLinked) {
				tampered = lockedLinked
				return ErrIntegrityCheckFailed
			}
			if err := s.applyLeg(ctx, tx, lockedLinked, wallets, approver, now); err != nil {
				return err
			}
			resolved = append(resolved, lockedLinked)
		}

		for _, wallet := range wallets {
			if err := s.wallets.UpdateBalances(ctx, tx, wallet); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if err == ErrIntegrityCheckFailed {
			s.reportIntegrityViolation(ctx, tampered, approver)
		}
		logger.Log.Errorw("failed to approve transaction", "transaction_id", txnID, "approver", approver, "error", err)
		return nil, err
	}

	for _, t := range resolved {
		s.events.Publish(ctx, t)
	}
	return resolved[0], nil
}

// Reject cancels a pending transaction without touching settled balances.
// Integrity is verified first (the released hold amount comes from the stored
// record), funds held for an expense-direction leg are released, the reason
// lands in metadata, and a linked transfer leg is cancelled in the same
// locked scope.
func (s *ApprovalService) Reject(ctx context.Context, txnID, approver uuid.UUID, reason string) (*models.TransactionDB, error) {
	txn, err := s.txnReader.GetByID(ctx, txnID)
	if err != nil {
		return nil, err
	}
	if !txn.RequiresApproval {
		return nil, ErrApprovalNotRequired
	}
	if txn.Status != models.StatusPending {
		return nil, ErrTransactionNotPending
	}
	if !s.signer.Verify(txn) {
		s.reportIntegrityViolation(ctx, txn, approver)
		return nil, ErrIntegrityCheckFailed
	}

	linked, err := s.loadLinked(ctx, txn)
	if err != nil {
		return nil, err
	}

	var resolved []*models.TransactionDB
	tampered := txn
	now := time.Now().UTC()

	err = repositories.WithTx(ctx, s.db, func(tx *sqlx.Tx) error {
		wallets, err := s.lockWallets(ctx, tx, walletSet(txn, linked))
		if err != nil {
			return err
		}

		lockedTxn, err := s.recheckPending(ctx, tx, txn.TransactionID)
		if err != nil {
			return err
		}
		if !s.signer.Verify(lockedTxn) {
			tampered = lockedTxn
			return ErrIntegrityCheckFailed
		}
		if err := s.cancelLeg(ctx, tx, lockedTxn, wallets, approver, reason, now); err != nil {
			return err
		}
		resolved = append(resolved, lockedTxn)

		if linked != nil {
			lockedLinked, err := s.recheckPending(ctx, tx, linked.TransactionID)
			if err != nil {
				return err
			}
			if !s.signer.Verify(lockedLinked) {
				tampered = lockedLinked
				return ErrIntegrityCheckFailed
			}
			if err := s.cancelLeg(ctx, tx, lockedLinked, wallets, approver, reason, now); err != nil {
				return err
			}
			resolved = append(resolved, lockedLinked)
		}

		for _, wallet := range wallets {
			if err := s.wallets.UpdateBalances(ctx, tx, wallet); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if err == ErrIntegrityCheckFailed {
			s.reportIntegrityViolation(ctx, tampered, approver)
		}
		logger.Log.Errorw("failed to reject transaction", "transaction_id", txnID, "approver", approver, "error", err)
		return nil, err
	}

	for _, t := range resolved {
		s.events.Publish(ctx, t)
	}
	return resolved[0], nil
}

// loadLinked fetches the sibling transfer leg, if any.
func (s *ApprovalService) loadLinked(ctx context.Context, txn *models.TransactionDB) (*models.TransactionDB, error) {
	if txn.LinkedID == nil {
		return nil, nil
	}
	return s.txnReader.GetByID(ctx, *txn.LinkedID)
}

// walletSet collects the distinct wallet ids touched by a transaction and its
// linked leg.
func walletSet(txn, linked *models.TransactionDB) []uuid.UUID {
	ids := []uuid.UUID{txn.WalletID}
	if linked != nil && linked.WalletID != txn.WalletID {
		ids = append(ids, linked.WalletID)
	}
	return ids
}

// lockWallets acquires the row locks in ascending wallet-id order so two
// operations touching the same wallet pair in opposite directions cannot
// deadlock.
func (s *ApprovalService) lockWallets(ctx context.Context, tx *sqlx.Tx, ids []uuid.UUID) (map[uuid.UUID]*models.WalletDB, error) {
	sorted := make([]uuid.UUID, len(ids))
	copy(sorted, ids)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].String() < sorted[j].String()
	})

	wallets := make(map[uuid.UUID]*models.WalletDB, len(sorted))
	for _, id := range sorted {
		wallet, err := s.wallets.GetForUpdate(ctx, tx, id)
		if err != nil {
			return nil, err
		}
		wallets[id] = wallet
	}
	return wallets, nil
}

// recheckPending re-fetches a transaction inside the locked scope and aborts
// with a conflict when another actor already resolved it.
func (s *ApprovalService) recheckPending(ctx context.Context, tx *sqlx.Tx, txnID uuid.UUID) (*models.TransactionDB, error) {
	locked, err := s.txnWriter.GetForUpdate(ctx, tx, txnID)
	if err != nil {
		return nil, err
	}
	if locked.Status != models.StatusPending {
		return nil, ErrTransactionNotPending
	}
	return locked, nil
}

// applyLeg releases the creation-time hold (expense direction only), applies
// the ledger, stamps the approval, persists the status transition, and audits.
func (s *ApprovalService) applyLeg(ctx context.Context, tx *sqlx.Tx, txn *models.TransactionDB, wallets map[uuid.UUID]*models.WalletDB, approver uuid.UUID, now time.Time) error {
	wallet, ok := wallets[txn.WalletID]
	if !ok {
		return fmt.Errorf("wallet %s not locked for transaction %s", txn.WalletID, txn.TransactionID)
	}

	effType, err := txn.EffectiveType()
	if err != nil {
		return err
	}

	before := balanceSnapshot(wallet)

	if effType == models.TypeExpense {
		s.ledger.Release(wallet, txn.Amount)
	}
	if err := s.ledger.Apply(wallet, effType, txn.Amount); err != nil {
		return err
	}

	txn.Status = models.StatusCompleted
	txn.ApprovedBy = &approver
	txn.ApprovedAt = &now
	if err := s.txnWriter.Resolve(ctx, tx, txn); err != nil {
		return err
	}

	return s.audits.Log(ctx, tx, &models.AuditEventDB{
		AuditID:       uuid.New(),
		WalletID:      &txn.WalletID,
		TransactionID: &txn.TransactionID,
		UserID:        approver,
		EventType:     models.AuditTransactionApproved,
		Description:   fmt.Sprintf("transaction approved: %s %.2f", effType, txn.Amount),
		Before:        before,
		After:         balanceSnapshot(wallet),
	})
}

// cancelLeg releases any hold and marks the leg cancelled without applying
// its balance effect.
func (s *ApprovalService) cancelLeg(ctx context.Context, tx *sqlx.Tx, txn *models.TransactionDB, wallets map[uuid.UUID]*models.WalletDB, approver uuid.UUID, reason string, now time.Time) error {
	wallet, ok := wallets[txn.WalletID]
	if !ok {
		return fmt.Errorf("wallet %s not locked for transaction %s", txn.WalletID, txn.TransactionID)
	}

	effType, err := txn.EffectiveType()
	if err != nil {
		return err
	}

	before := balanceSnapshot(wallet)

	if effType == models.TypeExpense {
		s.ledger.Release(wallet, txn.Amount)
	}

	meta, err := models.ParseMetadata(txn.Metadata)
	if err != nil {
		return err
	}
	meta.RejectionReason = reason
	txn.Metadata = meta.JSON()

	txn.Status = models.StatusCancelled
	txn.ApprovedBy = &approver
	txn.ApprovedAt = &now
	if err := s.txnWriter.Resolve(ctx, tx, txn); err != nil {
		return err
	}

	return s.audits.Log(ctx, tx, &models.AuditEventDB{
		AuditID:       uuid.New(),
		WalletID:      &txn.WalletID,
		TransactionID: &txn.TransactionID,
		UserID:        approver,
		EventType:     models.AuditTransactionRejected,
		Description:   fmt.Sprintf("transaction rejected: %s", reason),
		Before:        before,
		After:         balanceSnapshot(wallet),
	})
}

// reportIntegrityViolation records a security audit event in its own scope
// after the failed operation rolled back.
func (s *ApprovalService) reportIntegrityViolation(ctx context.Context, txn *models.TransactionDB, actor uuid.UUID) {
	s.audits.LogSecurityEvent(ctx, &models.AuditEventDB{
		AuditID:       uuid.New(),
		WalletID:      &txn.WalletID,
		TransactionID: &txn.TransactionID,
		UserID:        actor,
		EventType:     models.AuditIntegrityViolation,
		Description:   "stored hash or signature does not match transaction fields",
		RiskScore:     90,
	})
}

// balanceSnapshot captures the audit before/after state of a wallet.
func balanceSnapshot(wallet *models.WalletDB) types.JSONText {
	b, _ := json.Marshal(map[string]float64{
		"balance":           wallet.Balance,
		"available_balance": wallet.AvailableBalance,
		"pending_balance":   wallet.PendingBalance,
	})
	return types.JSONText(b)
}
