package summary

import (
	"context"
	"net/http"

	"github.com/GlebRadaev/finseed/internal/domain"
	"github.com/GlebRadaev/finseed/internal/dto"
	"github.com/GlebRadaev/finseed/pkg/utils"
)

//go:generate mockgen -source=summary.go -destination=mock_service.go -package=summary

type Service interface {
	GetSummary(ctx context.Context) (map[domain.Entity]int64, error)
}

type SummaryHandler struct {
	summaryService Service
}

func New(summaryService Service) *SummaryHandler {
	return &SummaryHandler{
		summaryService: summaryService,
	}
}

// GetSummary reports the row count of every seeded table and of the operations view.
//
//	GET /api/summary
//	200 dto.SummaryResponseDTO, 500 store error
func (h *SummaryHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	counts, err := h.summaryService.GetSummary(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make(dto.SummaryResponseDTO, len(counts))
	for e, n := range counts {
		response[string(e)] = n
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
