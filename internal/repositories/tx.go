package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/finledger/wallet-ledger/internal/logger"
)

// WithTx runs fn inside a database transaction. The transaction handle is
// passed explicitly so lock-holding code never depends on ambient session
// state. Any error from fn, and any panic, rolls the whole scope back.
func WithTx(ctx context.Context, db *sqlx.DB, fn func(tx *sqlx.Tx) error) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		logger.Log.Errorw("failed to begin transaction", "error", err)
		return err
	}

	defer func() {
		if rec := recover(); rec != nil {
			tx.Rollback()
			panic(rec)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			logger.Log.Errorw("failed to rollback transaction", "error", rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		logger.Log.Errorw("failed to commit transaction", "error", err)
		return err
	}
	return nil
}
