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

// RejectTokener defines only the methods needed by this handler.
type RejectTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// TransactionRejecter defines the interface that the service must implement.
type TransactionRejecter interface {
	Reject(ctx context.Context, txnID, approver uuid.UUID, reason string) (*models.TransactionDB, error)
}

// RejectRequest represents the JSON body for rejecting a transaction
// swagger:model RejectRequest
type RejectRequest struct {
	// Rejection reason recorded on the transaction
	// default: amount exceeds budget
	Reason string `json:"reason"`
}

// RejectResponse represents a successful rejection response
// swagger:model RejectResponse
type RejectResponse struct {
	// Success message
	// default: Transaction rejected
	Message string `json:"message"`

	// The cancelled transaction
	Transaction TransactionView `json:"transaction"`
}

// NewRejectHandler returns an HTTP handler for rejecting a pending transaction.
// @Summary Reject a pending transaction
// @Description Cancels the pending transaction and releases the held funds. Transfer legs cancel together.
// @Tags approval
// @Accept json
// @Produce json
// @Param transactionID path string true "Transaction ID"
// @Param request body handlers.RejectRequest true "Reject Request"
// @Success 200 {object} handlers.RejectResponse "Transaction rejected"
// @Failure 400 {object} handlers.ErrorResponse "Invalid transaction id"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Transaction not found"
// @Failure 409 {object} handlers.ErrorResponse "Transaction no longer pending"
// @Router /transactions/{transactionID}/reject [post]
// @Security BearerAuth
func NewRejectHandler(
	svc TransactionRejecter,
	tokenGetter RejectTokener,
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

		txnID, err := uuid.Parse(chi.URLParam(r, "transactionID"))
		if err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid transaction id"})
			return
		}

		var req RejectRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode reject request", "error", err)
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
			return
		}

		txn, err := svc.Reject(ctx, txnID, claims.UserID, req.Reason)
		if err != nil {
			logger.Log.Errorw("failed to reject transaction", "transaction_id", txnID, "approver", claims.UserID, "error", err)
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, RejectResponse{
			Message:     "Transaction rejected",
			Transaction: newTransactionView(txn),
		})
	}
}
