package operations

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/finseed/internal/domain"
	"github.com/GlebRadaev/finseed/internal/dto"
)

func NewMock(t *testing.T) (*OperationsHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	return handler, service
}

func withUserID(r *http.Request, id string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("userID", id)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestGetOperationsHandler(t *testing.T) {
	handler, service := NewMock(t)
	ts := time.Date(2026, 9, 14, 16, 9, 57, 0, time.UTC)

	tests := []struct {
		name         string
		userID       string
		prepareMock  func()
		expectedCode int
		expectedBody []dto.OperationResponseDTO
	}{
		{
			name:   "Successful retrieval",
			userID: "3",
			prepareMock: func() {
				service.EXPECT().GetOperations(gomock.Any(), 3).Return([]domain.Operation{
					{ID: 61, UserID: 3, Amount: decimal.RequireFromString("-120.5"), TransactionType: domain.OperationInternalSend, LineID: 7, Timestamp: ts},
					{ID: 2, UserID: 3, Amount: decimal.RequireFromString("99"), TransactionType: domain.OperationMastercard, LineID: 2, Timestamp: ts.Add(-time.Hour)},
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: []dto.OperationResponseDTO{
				{ID: 61, Amount: decimal.RequireFromString("-120.5"), TransactionType: "internal_send", LineID: 7, Timestamp: ts},
				{ID: 2, Amount: decimal.RequireFromString("99"), TransactionType: "mastercard", LineID: 2, Timestamp: ts.Add(-time.Hour)},
			},
		},
		{
			name:   "No operations",
			userID: "4",
			prepareMock: func() {
				service.EXPECT().GetOperations(gomock.Any(), 4).Return(nil, nil)
			},
			expectedCode: http.StatusNoContent,
		},
		{
			name:         "Invalid id",
			userID:       "abc",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Non positive id",
			userID:       "0",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:   "Internal server error",
			userID: "3",
			prepareMock: func() {
				service.EXPECT().GetOperations(gomock.Any(), 3).Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := withUserID(httptest.NewRequest(http.MethodGet, "/api/users/"+tt.userID+"/operations", nil), tt.userID)
			w := httptest.NewRecorder()

			handler.GetOperations(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusNoContent {
				assert.Zero(t, w.Body.Len())
			}
			if tt.expectedCode == http.StatusOK {
				var body []dto.OperationResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Len(t, body, len(tt.expectedBody))
				for i := range body {
					assert.True(t, tt.expectedBody[i].Amount.Equal(body[i].Amount))
					assert.Equal(t, tt.expectedBody[i].TransactionType, body[i].TransactionType)
					assert.Equal(t, tt.expectedBody[i].LineID, body[i].LineID)
					assert.True(t, tt.expectedBody[i].Timestamp.Equal(body[i].Timestamp))
				}
			}
		})
	}
}
