package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/finledger/wallet-ledger/internal/logger"
	"github.com/finledger/wallet-ledger/internal/models"
)

// ErrWalletNotFound is returned when a wallet id matches no row.
var ErrWalletNotFound = errors.New("wallet not found")

const walletColumns = `
	wallet_id, user_id, currency, balance, available_balance, pending_balance,
	is_active, is_locked, locked_until, daily_limit, monthly_limit,
	allow_negative_balance, require_approval, approval_limit,
	created_at, updated_at
`

// WalletReadRepository handles wallet read operations outside of locked scopes.
type WalletReadRepository struct {
	db *sqlx.DB
}

func NewWalletReadRepository(db *sqlx.DB) *WalletReadRepository {
	return &WalletReadRepository{db: db}
}

// GetByID retrieves a wallet without locking it.
func (r *WalletReadRepository) GetByID(ctx context.Context, walletID uuid.UUID) (*models.WalletDB, error) {
	const query = `
		SELECT ` + walletColumns + `
		FROM wallets
		WHERE wallet_id = $1
	`

	var wallet models.WalletDB
	err := r.db.GetContext(ctx, &wallet, query, walletID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{walletID},
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrWalletNotFound
		}
		return nil, err
	}
	return &wallet, nil
}

// GetByUserID retrieves all wallets owned by a user.
func (r *WalletReadRepository) GetByUserID(ctx context.Context, userID uuid.UUID) ([]models.WalletDB, error) {
	const query = `
		SELECT ` + walletColumns + `
		FROM wallets
		WHERE user_id = $1
		ORDER BY created_at
	`

	var wallets []models.WalletDB
	err := r.db.SelectContext(ctx, &wallets, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", len(wallets),
		"error", err,
	)

	return wallets, err
}

// WalletWriteRepository handles wallet mutations. Balance updates must happen
// through a row acquired with GetForUpdate on the same transaction handle.
type WalletWriteRepository struct {
	db *sqlx.DB
}

func NewWalletWriteRepository(db *sqlx.DB) *WalletWriteRepository {
	return &WalletWriteRepository{db: db}
}

// GetForUpdate acquires an exclusive row lock on the wallet for the duration
// of tx, blocking concurrent writers until commit or rollback. Callers that
// lock more than one wallet must acquire locks in ascending wallet-id order.
func (r *WalletWriteRepository) GetForUpdate(ctx context.Context, tx *sqlx.Tx, walletID uuid.UUID) (*models.WalletDB, error) {
	const query = `
		SELECT ` + walletColumns + `
		FROM wallets
		WHERE wallet_id = $1
		FOR UPDATE
	`

	var wallet models.WalletDB
	err := tx.GetContext(ctx, &wallet, query, walletID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{walletID},
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrWalletNotFound
		}
		return nil, err
	}
	return &wallet, nil
}

// UpdateBalances persists the three balance fields of a wallet the caller
// holds the row lock on.
func (r *WalletWriteRepository) UpdateBalances(ctx context.Context, tx *sqlx.Tx, wallet *models.WalletDB) error {
	const query = `
		UPDATE wallets
		SET balance = $2,
		    available_balance = $3,
		    pending_balance = $4,
		    updated_at = NOW()
		WHERE wallet_id = $1
	`

	res, err := tx.ExecContext(ctx, query,
		wallet.WalletID, wallet.Balance, wallet.AvailableBalance, wallet.PendingBalance)

	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{wallet.WalletID, wallet.Balance, wallet.AvailableBalance, wallet.PendingBalance},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrWalletNotFound
	}
	return nil
}

// Save inserts a wallet row. Used by account provisioning and tests.
func (r *WalletWriteRepository) Save(ctx context.Context, wallet *models.WalletDB) error {
	const query = `
		INSERT INTO wallets (
			wallet_id, user_id, currency, balance, available_balance, pending_balance,
			is_active, is_locked, locked_until, daily_limit, monthly_limit,
			allow_negative_balance, require_approval, approval_limit,
			created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, NOW(), NOW())
	`

	_, err := r.db.ExecContext(ctx, query,
		wallet.WalletID, wallet.UserID, wallet.Currency,
		wallet.Balance, wallet.AvailableBalance, wallet.PendingBalance,
		wallet.IsActive, wallet.IsLocked, wallet.LockedUntil,
		wallet.DailyLimit, wallet.MonthlyLimit,
		wallet.AllowNegative, wallet.RequireApproval, wallet.ApprovalLimit)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{wallet.WalletID, wallet.UserID, wallet.Currency},
		"error", err,
	)

	return err
}
