package handlers

import (
	"bytes"
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
	"github.com/finledger/wallet-ledger/internal/services"
)

func TestDepositHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	walletID := uuid.New()

	completed := &models.TransactionDB{
		TransactionID: uuid.New(),
		WalletID:      walletID,
		UserID:        userID,
		Amount:        250,
		Type:          models.TypeIncome,
		Status:        models.StatusCompleted,
		CreatedAt:     time.Now().UTC(),
	}

	tests := []struct {
		name       string
		body       any
		setupMocks func(svc *MockDepositor, tokener *MockDepositTokener)
		wantStatus int
	}{
		{
			name: "successful deposit",
			body: DepositRequest{Amount: 250, Description: "payroll"},
			setupMocks: func(svc *MockDepositor, tokener *MockDepositTokener) {
				tokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("token", nil)
				tokener.EXPECT().GetClaims(gomock.Any(), "token").Return(&jwt.Claims{UserID: userID}, nil)
				svc.EXPECT().Deposit(gomock.Any(), userID, walletID, 250.0, "payroll").Return(completed, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "negative amount",
			body: DepositRequest{Amount: -1},
			setupMocks: func(svc *MockDepositor, tokener *MockDepositTokener) {
				tokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("token", nil)
				tokener.EXPECT().GetClaims(gomock.Any(), "token").Return(&jwt.Claims{UserID: userID}, nil)
				svc.EXPECT().Deposit(gomock.Any(), userID, walletID, -1.0, "").Return(nil, services.ErrInvalidAmount)
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "inactive wallet",
			body: DepositRequest{Amount: 250},
			setupMocks: func(svc *MockDepositor, tokener *MockDepositTokener) {
				tokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("token", nil)
				tokener.EXPECT().GetClaims(gomock.Any(), "token").Return(&jwt.Claims{UserID: userID}, nil)
				svc.EXPECT().Deposit(gomock.Any(), userID, walletID, 250.0, "").Return(nil, services.ErrWalletInactive)
			},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name: "invalid body",
			body: "not json",
			setupMocks: func(svc *MockDepositor, tokener *MockDepositTokener) {
				tokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("token", nil)
				tokener.EXPECT().GetClaims(gomock.Any(), "token").Return(&jwt.Claims{UserID: userID}, nil)
			},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewMockDepositor(ctrl)
			tokener := NewMockDepositTokener(ctrl)
			tt.setupMocks(svc, tokener)

			var buf bytes.Buffer
			if s, ok := tt.body.(string); ok {
				buf.WriteString(s)
			} else {
				assert.NoError(t, json.NewEncoder(&buf).Encode(tt.body))
			}

			router := chi.NewRouter()
			router.Post("/wallets/{walletID}/deposit", NewDepositHandler(svc, tokener))

			req := httptest.NewRequest(http.MethodPost, "/wallets/"+walletID.String()+"/deposit", &buf)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				var resp DepositResponse
				assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				assert.Equal(t, "Deposit completed successfully", resp.Message)
				assert.Equal(t, completed.TransactionID, resp.Transaction.TransactionID)
				assert.Equal(t, 250.0, resp.Transaction.Amount)
			}
		})
	}
}
