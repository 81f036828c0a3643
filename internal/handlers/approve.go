package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/finledger/wallet-ledger/internal/jwt"
	"github.com/finledger/wallet-ledger/internal/logger"
	"github.com/finledger/wallet-ledger/internal/models"
)

// ApproveTokener defines only the methods needed by this handler.
type ApproveTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// TransactionApprover defines the interface that the service must implement.
type TransactionApprover interface {
	Approve(ctx context.Context, txnID, approver uuid.UUID) (*models.TransactionDB, error)
}

// ApproveResponse represents a successful approval response
// swagger:model ApproveResponse
type ApproveResponse struct {
	// Success message
	// default: Transaction approved
	Message string `json:"message"`

	// The completed transaction
	Transaction TransactionView `json:"transaction"`
}

// NewApproveHandler returns an HTTP handler for approving a pending transaction.
// @Summary Approve a pending transaction
// @Description Verifies transaction integrity, releases the held funds and applies the ledger effect. Transfer legs complete together.
// @Tags approval
// @Produce json
// @Param transactionID path string true "Transaction ID"
// @Success 200 {object} handlers.ApproveResponse "Transaction approved"
// @Failure 400 {object} handlers.ErrorResponse "Invalid transaction id"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Transaction not found"
// @Failure 409 {object} handlers.ErrorResponse "Transaction no longer pending or integrity check failed"
// @Router /transactions/{transactionID}/approve [post]
// @Security BearerAuth
func NewApproveHandler(
	svc TransactionApprover,
	tokenGetter ApproveTokener,
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

		txn, err := svc.Approve(ctx, txnID, claims.UserID)
		if err != nil {
			logger.Log.Errorw("failed to approve transaction", "transaction_id", txnID, "approver", claims.UserID, "error", err)
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, ApproveResponse{
			Message:     "Transaction approved",
			Transaction: newTransactionView(txn),
		})
	}
}
