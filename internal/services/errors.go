package services

import "errors"

// Validation failures: rejected before any lock is taken, no side effects.
var (
	ErrInvalidAmount    = errors.New("amount must be positive")
	ErrInvalidType      = errors.New("unsupported transaction type")
	ErrSameWallet       = errors.New("cannot transfer to the same wallet")
	ErrCurrencyMismatch = errors.New("wallet currencies do not match")
)

// Policy failures: rejected before any lock is taken, no side effects.
var (
	ErrInsufficientFunds    = errors.New("insufficient funds")
	ErrDailyLimitExceeded   = errors.New("daily spending limit exceeded")
	ErrMonthlyLimitExceeded = errors.New("monthly spending limit exceeded")
	ErrWalletLocked         = errors.New("wallet is locked")
	ErrWalletInactive       = errors.New("wallet is not active")
	ErrApprovalNotRequired  = errors.New("transaction does not require approval")
)

// Concurrency conflicts: the locked scope rolled back; callers may retry
// after re-fetching current state.
var ErrTransactionNotPending = errors.New("transaction is no longer pending")

// ErrIntegrityCheckFailed is a security event: the stored transaction's hash
// or signature no longer matches its fields.
var ErrIntegrityCheckFailed = errors.New("transaction integrity verification failed")
