package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/finledger/wallet-ledger/internal/jwt"
	"github.com/finledger/wallet-ledger/internal/models"
)

func TestTransactionsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	walletID := uuid.New()

	history := []models.TransactionDB{
		{TransactionID: uuid.New(), WalletID: walletID, Amount: 200, Type: models.TypeIncome, Status: models.StatusCompleted, CreatedAt: time.Now().UTC()},
		{TransactionID: uuid.New(), WalletID: walletID, Amount: 50, Type: models.TypeExpense, Status: models.StatusCompleted, CreatedAt: time.Now().UTC().Add(-time.Hour)},
	}

	tests := []struct {
		name       string
		query      string
		setupMocks func(svc *MockTransactionsLister, tokener *MockTransactionsTokener)
		wantStatus int
		wantCount  int
	}{
		{
			name: "default limit",
			setupMocks: func(svc *MockTransactionsLister, tokener *MockTransactionsTokener) {
				tokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("token", nil)
				tokener.EXPECT().GetClaims(gomock.Any(), "token").Return(&jwt.Claims{UserID: userID}, nil)
				svc.EXPECT().ListTransactions(gomock.Any(), walletID, 0).Return(history, nil)
			},
			wantStatus: http.StatusOK,
			wantCount:  2,
		},
		{
			name:  "explicit limit",
			query: "?limit=1",
			setupMocks: func(svc *MockTransactionsLister, tokener *MockTransactionsTokener) {
				tokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("token", nil)
				tokener.EXPECT().GetClaims(gomock.Any(), "token").Return(&jwt.Claims{UserID: userID}, nil)
				svc.EXPECT().ListTransactions(gomock.Any(), walletID, 1).Return(history[:1], nil)
			},
			wantStatus: http.StatusOK,
			wantCount:  1,
		},
		{
			name:  "non-numeric limit",
			query: "?limit=abc",
			setupMocks: func(svc *MockTransactionsLister, tokener *MockTransactionsTokener) {
				tokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("token", nil)
				tokener.EXPECT().GetClaims(gomock.Any(), "token").Return(&jwt.Claims{UserID: userID}, nil)
			},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewMockTransactionsLister(ctrl)
			tokener := NewMockTransactionsTokener(ctrl)
			tt.setupMocks(svc, tokener)

			router := chi.NewRouter()
			router.Get("/wallets/{walletID}/transactions", NewTransactionsHandler(svc, tokener))

			req := httptest.NewRequest(http.MethodGet, "/wallets/"+walletID.String()+"/transactions"+tt.query, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				var resp TransactionsResponse
				assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				assert.Len(t, resp.Transactions, tt.wantCount)
			}
		})
	}
}
