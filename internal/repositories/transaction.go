package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/finledger/wallet-ledger/internal/logger"
	"github.com/finledger/wallet-ledger/internal/models"
)

// ErrTransactionNotFound is returned when a transaction id matches no row.
var ErrTransactionNotFound = errors.New("transaction not found")

const transactionColumns = `
	transaction_id, wallet_id, user_id, amount, transaction_type, status,
	reference, description, requires_approval, approved_by, approved_at,
	linked_transaction_id, transaction_hash, digital_signature, metadata,
	created_at, updated_at
`

// TransactionReadRepository handles transaction reads.
type TransactionReadRepository struct {
	db *sqlx.DB
}

func NewTransactionReadRepository(db *sqlx.DB) *TransactionReadRepository {
	return &TransactionReadRepository{db: db}
}

// GetByID retrieves a transaction without locking it.
func (r *TransactionReadRepository) GetByID(ctx context.Context, txnID uuid.UUID) (*models.TransactionDB, error) {
	const query = `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE transaction_id = $1
	`

	var txn models.TransactionDB
	err := r.db.GetContext(ctx, &txn, query, txnID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{txnID},
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTransactionNotFound
		}
		return nil, err
	}
	return &txn, nil
}

// ListByWallet returns a wallet's transactions, newest first.
func (r *TransactionReadRepository) ListByWallet(ctx context.Context, walletID uuid.UUID, limit int) ([]models.TransactionDB, error) {
	const query = `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE wallet_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	var txns []models.TransactionDB
	err := r.db.SelectContext(ctx, &txns, query, walletID, limit)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{walletID, limit},
		"result", len(txns),
		"error", err,
	)

	return txns, err
}

// SumExpensesSince returns the volume of completed expense-direction
// transactions (expense + outgoing transfer legs) created at or after since.
// Used by the daily/monthly spending-limit checks.
func (r *TransactionReadRepository) SumExpensesSince(ctx context.Context, walletID uuid.UUID, since time.Time) (float64, error) {
	const query = `
		SELECT COALESCE(SUM(amount), 0)
		FROM transactions
		WHERE wallet_id = $1
		  AND (
			transaction_type = 'expense'
			OR (transaction_type = 'transfer' AND metadata->>'direction' = 'outgoing')
		  )
		  AND status IN ('pending', 'completed')
		  AND created_at >= $2
	`

	var total float64
	err := r.db.GetContext(ctx, &total, query, walletID, since)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{walletID, since},
		"result", total,
		"error", err,
	)

	return total, err
}

// TransactionWriteRepository handles transaction mutations.
type TransactionWriteRepository struct {
	db *sqlx.DB
}

func NewTransactionWriteRepository(db *sqlx.DB) *TransactionWriteRepository {
	return &TransactionWriteRepository{db: db}
}

// execer lets write methods run either on the pool or on an explicit
// transaction handle.
type execer interface {
	sqlx.ExtContext
}

// Save inserts a transaction row on the given handle.
func (r *TransactionWriteRepository) Save(ctx context.Context, tx *sqlx.Tx, txn *models.TransactionDB) error {
	const query = `
		INSERT INTO transactions (
			transaction_id, wallet_id, user_id, amount, transaction_type, status,
			reference, description, requires_approval, approved_by, approved_at,
			linked_transaction_id, transaction_hash, digital_signature, metadata,
			created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $16)
	`

	var exec execer = r.db
	if tx != nil {
		exec = tx
	}

	_, err := exec.ExecContext(ctx, query,
		txn.TransactionID, txn.WalletID, txn.UserID, txn.Amount, txn.Type, txn.Status,
		txn.Reference, txn.Description, txn.RequiresApproval, txn.ApprovedBy, txn.ApprovedAt,
		txn.LinkedID, txn.Hash, txn.Signature, txn.Metadata, txn.CreatedAt)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{txn.TransactionID, txn.WalletID, txn.Type, txn.Status, txn.Amount},
		"error", err,
	)

	return err
}

// GetForUpdate re-fetches a transaction inside the caller's locked scope so
// its status can be re-checked after the wallet lock was acquired.
func (r *TransactionWriteRepository) GetForUpdate(ctx context.Context, tx *sqlx.Tx, txnID uuid.UUID) (*models.TransactionDB, error) {
	const query = `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE transaction_id = $1
		FOR UPDATE
	`

	var txn models.TransactionDB
	err := tx.GetContext(ctx, &txn, query, txnID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{txnID},
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTransactionNotFound
		}
		return nil, err
	}
	return &txn, nil
}

// Resolve stamps a terminal status on a transaction together with the
// approver identity and updated metadata.
func (r *TransactionWriteRepository) Resolve(ctx context.Context, tx *sqlx.Tx, txn *models.TransactionDB) error {
	const query = `
		UPDATE transactions
		SET status = $2,
		    approved_by = $3,
		    approved_at = $4,
		    metadata = $5,
		    updated_at = NOW()
		WHERE transaction_id = $1
	`

	res, err := tx.ExecContext(ctx, query,
		txn.TransactionID, txn.Status, txn.ApprovedBy, txn.ApprovedAt, txn.Metadata)

	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{txn.TransactionID, txn.Status},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrTransactionNotFound
	}
	return nil
}
