package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/finledger/wallet-ledger/internal/repositories"
	"github.com/finledger/wallet-ledger/internal/services"
)

// ErrorResponse is the JSON body returned for any failed request.
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: Invalid request
	Error string `json:"error"`
}

// statusForError maps the service error taxonomy onto HTTP statuses:
// validation 400, policy 422, conflicts (retryable) and integrity 409,
// unknown ids 404, everything else 500.
func statusForError(err error) int {
	switch {
	case errors.Is(err, services.ErrInvalidAmount),
		errors.Is(err, services.ErrInvalidType),
		errors.Is(err, services.ErrSameWallet),
		errors.Is(err, services.ErrCurrencyMismatch):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrInsufficientFunds),
		errors.Is(err, services.ErrDailyLimitExceeded),
		errors.Is(err, services.ErrMonthlyLimitExceeded),
		errors.Is(err, services.ErrWalletLocked),
		errors.Is(err, services.ErrWalletInactive),
		errors.Is(err, services.ErrApprovalNotRequired):
		return http.StatusUnprocessableEntity
	case errors.Is(err, services.ErrTransactionNotPending),
		errors.Is(err, services.ErrIntegrityCheckFailed):
		return http.StatusConflict
	case errors.Is(err, repositories.ErrWalletNotFound),
		errors.Is(err, repositories.ErrTransactionNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// writeServiceError writes the mapped status with a descriptive message for
// recoverable failures; internal failures stay generic.
func writeServiceError(w http.ResponseWriter, err error) {
	status := statusForError(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = "Internal server error"
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ErrorResponse{Error: msg})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
