package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/finledger/wallet-ledger/internal/jwt"
	"github.com/finledger/wallet-ledger/internal/logger"
	"github.com/finledger/wallet-ledger/internal/models"
)

// BalanceTokener defines only the methods needed by this handler.
type BalanceTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// WalletGetter defines the interface that the service must implement.
type WalletGetter interface {
	GetWallet(ctx context.Context, walletID uuid.UUID) (*models.WalletDB, error)
}

// BalanceResponse represents the wallet balance state
// swagger:model BalanceResponse
type BalanceResponse struct {
	// Wallet id
	WalletID uuid.UUID `json:"wallet_id"`

	// Currency code
	// default: USD
	Currency string `json:"currency"`

	// Total balance including held funds
	// default: 1000.0
	Balance float64 `json:"balance"`

	// Spendable balance
	// default: 900.0
	AvailableBalance float64 `json:"available_balance"`

	// Funds held by pending transactions
	// default: 100.0
	PendingBalance float64 `json:"pending_balance"`

	// Whether the wallet accepts operations
	IsActive bool `json:"is_active"`

	// Whether the wallet is administratively locked
	IsLocked bool `json:"is_locked"`
}

// NewBalanceHandler returns an HTTP handler for reading a wallet's balances.
// @Summary Get wallet balance
// @Description Returns total, available and pending balances for the wallet.
// @Tags wallet
// @Produce json
// @Param walletID path string true "Wallet ID"
// @Success 200 {object} handlers.BalanceResponse "Wallet state"
// @Failure 400 {object} handlers.ErrorResponse "Invalid wallet id"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Wallet not found"
// @Router /wallets/{walletID} [get]
// @Security BearerAuth
func NewBalanceHandler(
	svc WalletGetter,
	tokenGetter BalanceTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
		if err != nil {
			logger.Log.Errorw("failed to get token from request", "error", err)
			writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
			return
		}
		if _, err := tokenGetter.GetClaims(ctx, tokenStr); err != nil {
			logger.Log.Errorw("failed to get claims from token", "error", err)
			writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
			return
		}

		walletID, err := uuid.Parse(chi.URLParam(r, "walletID"))
		if err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid wallet id"})
			return
		}

		wallet, err := svc.GetWallet(ctx, walletID)
		if err != nil {
			logger.Log.Errorw("failed to get wallet", "wallet_id", walletID, "error", err)
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, BalanceResponse{
			WalletID:         wallet.WalletID,
			Currency:         wallet.Currency,
			Balance:          wallet.Balance,
			AvailableBalance: wallet.AvailableBalance,
			PendingBalance:   wallet.PendingBalance,
			IsActive:         wallet.IsActive,
			IsLocked:         wallet.Locked(time.Now().UTC()),
		})
	}
}
