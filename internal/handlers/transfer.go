package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/finledger/wallet-ledger/internal/jwt"
	"github.com/finledger/wallet-ledger/internal/logger"
	"github.com/finledger/wallet-ledger/internal/models"
)

// TransferTokener defines only the methods needed by this handler.
type TransferTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// Transferer defines the interface that the service must implement.
type Transferer interface {
	Transfer(ctx context.Context, userID, sourceID, targetID uuid.UUID, amount float64, description string) (*models.TransactionDB, *models.TransactionDB, error)
}

// TransferRequest represents the JSON body for a wallet-to-wallet transfer
// swagger:model TransferRequest
type TransferRequest struct {
	// Source wallet id
	// required: true
	SourceWalletID uuid.UUID `json:"source_wallet_id"`

	// Target wallet id
	// required: true
	TargetWalletID uuid.UUID `json:"target_wallet_id"`

	// Amount to transfer
	// required: true
	// default: 100.0
	Amount float64 `json:"amount"`

	// Description
	// default: invoice 42
	Description string `json:"description"`
}

// TransferResponse represents a successful transfer response
// swagger:model TransferResponse
type TransferResponse struct {
	// Success message
	// default: Transfer completed successfully
	Message string `json:"message"`

	// Debit leg on the source wallet
	Outgoing TransactionView `json:"outgoing"`

	// Credit leg on the target wallet
	Incoming TransactionView `json:"incoming"`
}

// NewTransferHandler returns an HTTP handler for wallet-to-wallet transfers.
// @Summary Transfer funds between wallets
// @Description Creates a cryptographically linked debit/credit pair and applies both atomically. Amounts above the source wallet's approval limit are held pending.
// @Tags transfer
// @Accept json
// @Produce json
// @Param request body handlers.TransferRequest true "Transfer Request"
// @Success 200 {object} handlers.TransferResponse "Transfer applied or held pending"
// @Failure 400 {object} handlers.ErrorResponse "Invalid amount, same wallet or currency mismatch"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 422 {object} handlers.ErrorResponse "Insufficient funds or limit exceeded"
// @Router /transfers [post]
// @Security BearerAuth
func NewTransferHandler(
	svc Transferer,
	tokenGetter TransferTokener,
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

		var req TransferRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode transfer request", "error", err)
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
			return
		}

		outgoing, incoming, err := svc.Transfer(ctx, claims.UserID, req.SourceWalletID, req.TargetWalletID, req.Amount, req.Description)
		if err != nil {
			logger.Log.Errorw("failed to transfer funds",
				"user_id", claims.UserID,
				"source", req.SourceWalletID,
				"target", req.TargetWalletID,
				"amount", req.Amount,
				"error", err)
			writeServiceError(w, err)
			return
		}

		message := "Transfer completed successfully"
		if outgoing.RequiresApproval {
			message = "Transfer held for approval"
		}
		writeJSON(w, http.StatusOK, TransferResponse{
			Message:  message,
			Outgoing: newTransactionView(outgoing),
			Incoming: newTransactionView(incoming),
		})
	}
}
