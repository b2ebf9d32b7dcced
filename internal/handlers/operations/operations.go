package operations

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/finseed/internal/domain"
	"github.com/GlebRadaev/finseed/internal/dto"
	"github.com/GlebRadaev/finseed/pkg/utils"
)

//go:generate mockgen -source=operations.go -destination=mock_service.go -package=operations

type Service interface {
	GetOperations(ctx context.Context, userID int) ([]domain.Operation, error)
}

type OperationsHandler struct {
	operationsService Service
}

func New(operationsService Service) *OperationsHandler {
	return &OperationsHandler{
		operationsService: operationsService,
	}
}

// GetOperations returns the signed operations of one user, newest first.
//
//	GET /api/users/{userID}/operations
//	200 []dto.OperationResponseDTO, 204 no operations, 400 bad id, 500 store error
func (h *OperationsHandler) GetOperations(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.Atoi(chi.URLParam(r, "userID"))
	if err != nil || userID <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	ops, err := h.operationsService.GetOperations(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if len(ops) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	response := make([]dto.OperationResponseDTO, len(ops))
	for i, op := range ops {
		response[i] = dto.OperationResponseDTO{
			ID:              op.ID,
			Amount:          op.Amount,
			TransactionType: string(op.TransactionType),
			LineID:          op.LineID,
			Timestamp:       op.Timestamp,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
