package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/finledger/wallet-ledger/internal/jwt"
	"github.com/finledger/wallet-ledger/internal/logger"
	"github.com/finledger/wallet-ledger/internal/models"
)

// TransactionsTokener defines only the methods needed by this handler.
type TransactionsTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// TransactionsLister defines the interface that the service must implement.
type TransactionsLister interface {
	ListTransactions(ctx context.Context, walletID uuid.UUID, limit int) ([]models.TransactionDB, error)
}

// TransactionsResponse represents a wallet's transaction history
// swagger:model TransactionsResponse
type TransactionsResponse struct {
	// Transactions, newest first
	Transactions []TransactionView `json:"transactions"`
}

// NewTransactionsHandler returns an HTTP handler for listing wallet transactions.
// @Summary List wallet transactions
// @Description Returns the wallet's transactions, newest first. Limit defaults to 50, capped at 100.
// @Tags wallet
// @Produce json
// @Param walletID path string true "Wallet ID"
// @Param limit query int false "Maximum number of rows"
// @Success 200 {object} handlers.TransactionsResponse "Transaction history"
// @Failure 400 {object} handlers.ErrorResponse "Invalid wallet id"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /wallets/{walletID}/transactions [get]
// @Security BearerAuth
func NewTransactionsHandler(
	svc TransactionsLister,
	tokenGetter TransactionsTokener,
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

		limit := 0
		if raw := r.URL.Query().Get("limit"); raw != "" {
			limit, err = strconv.Atoi(raw)
			if err != nil {
				writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid limit"})
				return
			}
		}

		txns, err := svc.ListTransactions(ctx, walletID, limit)
		if err != nil {
			logger.Log.Errorw("failed to list transactions", "wallet_id", walletID, "error", err)
			writeServiceError(w, err)
			return
		}

		views := make([]TransactionView, 0, len(txns))
		for i := range txns {
			views = append(views, newTransactionView(&txns[i]))
		}
		writeJSON(w, http.StatusOK, TransactionsResponse{Transactions: views})
	}
}
