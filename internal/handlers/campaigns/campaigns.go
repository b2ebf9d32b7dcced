package campaigns

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/finseed/internal/domain"
	"github.com/GlebRadaev/finseed/internal/dto"
	"github.com/GlebRadaev/finseed/pkg/utils"
)

//go:generate mockgen -source=campaigns.go -destination=mock_service.go -package=campaigns

type Service interface {
	GetAssignments(ctx context.Context, campaignID int) ([]domain.UserCampaign, error)
}

type CampaignsHandler struct {
	campaignsService Service
}

func New(campaignsService Service) *CampaignsHandler {
	return &CampaignsHandler{
		campaignsService: campaignsService,
	}
}

// GetAssignments lists the users assigned to a campaign.
//
//	GET /api/campaigns/{campaignID}/assignments
//	200 []dto.AssignmentResponseDTO, 204 nobody qualified, 400 bad id, 500 store error
func (h *CampaignsHandler) GetAssignments(w http.ResponseWriter, r *http.Request) {
	campaignID, err := strconv.Atoi(chi.URLParam(r, "campaignID"))
	if err != nil || campaignID <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid campaign id")
		return
	}

	assignments, err := h.campaignsService.GetAssignments(r.Context(), campaignID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if len(assignments) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	response := make([]dto.AssignmentResponseDTO, len(assignments))
	for i, a := range assignments {
		response[i] = dto.AssignmentResponseDTO{
			UserID:       a.UserID,
			MerchantList: a.MerchantList,
			StartDate:    a.StartDate,
			EndDate:      a.EndDate,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
