package campaigns

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/finseed/internal/domain"
	"github.com/GlebRadaev/finseed/internal/dto"
)

func NewMock(t *testing.T) (*CampaignsHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	return handler, service
}

func withCampaignID(r *http.Request, id string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("campaignID", id)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestGetAssignmentsHandler(t *testing.T) {
	handler, service := NewMock(t)
	start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		campaignID   string
		prepareMock  func()
		expectedCode int
		expectedBody []dto.AssignmentResponseDTO
	}{
		{
			name:       "Successful retrieval",
			campaignID: "5",
			prepareMock: func() {
				service.EXPECT().GetAssignments(gomock.Any(), 5).Return([]domain.UserCampaign{
					{UserID: 4, CampaignID: 5, MerchantList: []string{"Amazon"}, StartDate: start, EndDate: end},
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: []dto.AssignmentResponseDTO{
				{UserID: 4, MerchantList: []string{"Amazon"}, StartDate: start, EndDate: end},
			},
		},
		{
			name:       "Nobody qualified",
			campaignID: "6",
			prepareMock: func() {
				service.EXPECT().GetAssignments(gomock.Any(), 6).Return(nil, nil)
			},
			expectedCode: http.StatusNoContent,
		},
		{
			name:         "Invalid id",
			campaignID:   "-2",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:       "Internal server error",
			campaignID: "5",
			prepareMock: func() {
				service.EXPECT().GetAssignments(gomock.Any(), 5).Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := withCampaignID(httptest.NewRequest(http.MethodGet, "/api/campaigns/"+tt.campaignID+"/assignments", nil), tt.campaignID)
			w := httptest.NewRecorder()

			handler.GetAssignments(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusNoContent {
				assert.Zero(t, w.Body.Len())
			}
			if tt.expectedCode == http.StatusOK {
				var body []dto.AssignmentResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, tt.expectedBody, body)
			}
		})
	}
}
