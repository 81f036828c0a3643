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

// DepositTokener defines only the methods needed by this handler.
type DepositTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// Depositor defines the interface that the service must implement.
type Depositor interface {
	Deposit(ctx context.Context, userID, walletID uuid.UUID, amount float64, description string) (*models.TransactionDB, error)
}

// DepositRequest represents the JSON body for depositing funds
// swagger:model DepositRequest
type DepositRequest struct {
	// Amount to deposit
	// required: true
	// default: 100.0
	Amount float64 `json:"amount"`

	// Description
	// default: payroll
	Description string `json:"description"`
}

// DepositResponse represents a successful deposit response
// swagger:model DepositResponse
type DepositResponse struct {
	// Success message
	// default: Deposit completed successfully
	Message string `json:"message"`

	// The created transaction
	Transaction TransactionView `json:"transaction"`
}

// NewDepositHandler returns an HTTP handler for depositing funds into a wallet.
// @Summary Deposit funds
// @Description Credits the wallet with an income transaction. Deposits apply immediately.
// @Tags wallet
// @Accept json
// @Produce json
// @Param walletID path string true "Wallet ID"
// @Param request body handlers.DepositRequest true "Deposit Request"
// @Success 200 {object} handlers.DepositResponse "Deposit completed"
// @Failure 400 {object} handlers.ErrorResponse "Invalid amount or wallet id"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 422 {object} handlers.ErrorResponse "Wallet inactive or locked"
// @Router /wallets/{walletID}/deposit [post]
// @Security BearerAuth
func NewDepositHandler(
	svc Depositor,
	tokenGetter DepositTokener,
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

		var req DepositRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode deposit request", "error", err)
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
			return
		}

		txn, err := svc.Deposit(ctx, claims.UserID, walletID, req.Amount, req.Description)
		if err != nil {
			logger.Log.Errorw("failed to deposit funds", "user_id", claims.UserID, "wallet_id", walletID, "amount", req.Amount, "error", err)
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, DepositResponse{
			Message:     "Deposit completed successfully",
			Transaction: newTransactionView(txn),
		})
	}
}
