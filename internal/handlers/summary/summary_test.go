package summary

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/finseed/internal/domain"
	"github.com/GlebRadaev/finseed/internal/dto"
)

func NewMock(t *testing.T) (*SummaryHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	return handler, service
}

func TestGetSummaryHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
		expectedBody dto.SummaryResponseDTO
	}{
		{
			name: "Successful retrieval",
			prepareMock: func() {
				service.EXPECT().GetSummary(gomock.Any()).Return(map[domain.Entity]int64{
					domain.EntityUsers:      100,
					domain.EntityOperations: 320,
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: dto.SummaryResponseDTO{"users": 100, "operations": 320},
		},
		{
			name: "Internal server error",
			prepareMock: func() {
				service.EXPECT().GetSummary(gomock.Any()).Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodGet, "/api/summary", nil)
			w := httptest.NewRecorder()

			handler.GetSummary(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.SummaryResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, tt.expectedBody, body)
			}
		})
	}
}
