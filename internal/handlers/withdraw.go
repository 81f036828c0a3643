package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/finledger/wallet-ledger/internal/jwt"
	"github.com/finledger/wallet-ledger/internal/logger"
	"github.com/finledger/wallet-ledger/internal/models"
)

// WithdrawTokener defines only the methods needed by this handler.
type WithdrawTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// Withdrawer defines the interface that the service must implement.
type Withdrawer interface {
	Withdraw(ctx context.Context, userID, walletID uuid.UUID, amount float64, description string) (*models.TransactionDB, error)
}

// WithdrawRequest represents the JSON body for withdrawing funds
// swagger:model WithdrawRequest
type WithdrawRequest struct {
	// Amount to withdraw
	// required: true
	// default: 100.0
	Amount float64 `json:"amount"`

	// Description
	// default: vendor payment
	Description string `json:"description"`
}

// WithdrawResponse represents a successful withdrawal response
// swagger:model WithdrawResponse
type WithdrawResponse struct {
	// Success message
	// default: Withdrawal accepted
	Message string `json:"message"`

	// The created transaction; pending when held for approval
	Transaction TransactionView `json:"transaction"`
}

// NewWithdrawHandler returns an HTTP handler for withdrawing funds from a wallet.
// @Summary Withdraw funds
// @Description Debits the wallet with an expense transaction. Amounts above the wallet's approval limit are created pending with the funds held.
// @Tags wallet
// @Accept json
// @Produce json
// @Param walletID path string true "Wallet ID"
// @Param request body handlers.WithdrawRequest true "Withdraw Request"
// @Success 200 {object} handlers.WithdrawResponse "Withdrawal applied or held pending"
// @Failure 400 {object} handlers.ErrorResponse "Invalid amount or wallet id"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 422 {object} handlers.ErrorResponse "Insufficient funds or limit exceeded"
// @Router /wallets/{walletID}/withdraw [post]
// @Security BearerAuth
func NewWithdrawHandler(
	svc Withdrawer,
	tokenGetter WithdrawTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
		if err != nil {
			logger.Log.Errorw("failed to get token from request", "error", err)
			writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
			return
		}
		claims, err := tokenGetter.GetClaims(ctx, tokenStr)
		if err != nil {
			logger.Log.Errorw("failed to get claims from token", "error", err)
			writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
			return
		}

		walletID, err := uuid.Parse(chi.URLParam(r, "walletID"))
		if err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid wallet id"})
			return
		}

		var req WithdrawRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode withdraw request", "error", err)
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
			return
		}

		txn, err := svc.Withdraw(ctx, claims.UserID, walletID, req.Amount, req.Description)
		if err != nil {
			logger.Log.Errorw("failed to withdraw funds", "user_id", claims.UserID, "wallet_id", walletID, "amount", req.Amount, "error", err)
			writeServiceError(w, err)
			return
		}

		message := "Withdrawal completed successfully"
		if txn.RequiresApproval {
			message = "Withdrawal held for approval"
		}
		writeJSON(w, http.StatusOK, WithdrawResponse{
			Message:     message,
			Transaction: newTransactionView(txn),
		})
	}
}
