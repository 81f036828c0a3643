package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/finledger/wallet-ledger/internal/jwt"
	"github.com/finledger/wallet-ledger/internal/models"
	"github.com/finledger/wallet-ledger/internal/repositories"
)

func TestBalanceHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	walletID := uuid.New()

	tests := []struct {
		name       string
		path       string
		setupMocks func(svc *MockWalletGetter, tokener *MockBalanceTokener)
		wantStatus int
	}{
		{
			name: "returns wallet balances",
			path: "/wallets/" + walletID.String(),
			setupMocks: func(svc *MockWalletGetter, tokener *MockBalanceTokener) {
				tokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("token", nil)
				tokener.EXPECT().GetClaims(gomock.Any(), "token").Return(&jwt.Claims{UserID: userID}, nil)
				svc.EXPECT().GetWallet(gomock.Any(), walletID).Return(&models.WalletDB{
					WalletID:         walletID,
					Currency:         "USD",
					Balance:          1000,
					AvailableBalance: 900,
					PendingBalance:   100,
					IsActive:         true,
				}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "missing token",
			path: "/wallets/" + walletID.String(),
			setupMocks: func(svc *MockWalletGetter, tokener *MockBalanceTokener) {
				tokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("", errors.New("authorization header missing"))
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "malformed wallet id",
			path: "/wallets/not-a-uuid",
			setupMocks: func(svc *MockWalletGetter, tokener *MockBalanceTokener) {
				tokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("token", nil)
				tokener.EXPECT().GetClaims(gomock.Any(), "token").Return(&jwt.Claims{UserID: userID}, nil)
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "unknown wallet",
			path: "/wallets/" + walletID.String(),
			setupMocks: func(svc *MockWalletGetter, tokener *MockBalanceTokener) {
				tokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("token", nil)
				tokener.EXPECT().GetClaims(gomock.Any(), "token").Return(&jwt.Claims{UserID: userID}, nil)
				svc.EXPECT().GetWallet(gomock.Any(), walletID).Return(nil, repositories.ErrWalletNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewMockWalletGetter(ctrl)
			tokener := NewMockBalanceTokener(ctrl)
			tt.setupMocks(svc, tokener)

			router := chi.NewRouter()
			router.Get("/wallets/{walletID}", NewBalanceHandler(svc, tokener))

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				var resp BalanceResponse
				assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				assert.Equal(t, walletID, resp.WalletID)
				assert.Equal(t, 1000.0, resp.Balance)
				assert.Equal(t, 900.0, resp.AvailableBalance)
				assert.Equal(t, 100.0, resp.PendingBalance)
				assert.True(t, resp.IsActive)
				assert.False(t, resp.IsLocked)
			}
		})
	}
}
