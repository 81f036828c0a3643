package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/finledger/wallet-ledger/internal/services"
)

func TestRegisterHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name       string
		body       any
		setupMock  func(svc *MockRegisterer)
		wantStatus int
		wantError  string
	}{
		{
			name: "successful registration",
			body: RegisterRequest{Username: "alice", Password: "secret123", Email: "alice@example.com", Roles: []string{"Manager"}},
			setupMock: func(svc *MockRegisterer) {
				svc.EXPECT().
					Register(gomock.Any(), "alice", "secret123", "alice@example.com", []string{"Manager"}).
					Return(nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "duplicate user",
			body: RegisterRequest{Username: "alice", Password: "secret123", Email: "alice@example.com"},
			setupMock: func(svc *MockRegisterer) {
				svc.EXPECT().
					Register(gomock.Any(), "alice", "secret123", "alice@example.com", gomock.Nil()).
					Return(services.ErrUserAlreadyExists)
			},
			wantStatus: http.StatusBadRequest,
			wantError:  "Username or email already exists",
		},
		{
			name: "service failure",
			body: RegisterRequest{Username: "alice", Password: "secret123", Email: "alice@example.com"},
			setupMock: func(svc *MockRegisterer) {
				svc.EXPECT().
					Register(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("db down"))
			},
			wantStatus: http.StatusInternalServerError,
			wantError:  "Internal server error",
		},
		{
			name:       "invalid body",
			body:       "not json",
			setupMock:  func(svc *MockRegisterer) {},
			wantStatus: http.StatusBadRequest,
			wantError:  "Invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewMockRegisterer(ctrl)
			tt.setupMock(svc)

			var buf bytes.Buffer
			if s, ok := tt.body.(string); ok {
				buf.WriteString(s)
			} else {
				assert.NoError(t, json.NewEncoder(&buf).Encode(tt.body))
			}

			req := httptest.NewRequest(http.MethodPost, "/register", &buf)
			rec := httptest.NewRecorder()

			NewRegisterHandler(svc).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantError != "" {
				var resp ErrorResponse
				assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				assert.Equal(t, tt.wantError, resp.Error)
			}
		})
	}
}
