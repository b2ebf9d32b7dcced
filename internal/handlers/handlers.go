package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	campaignshandlers "github.com/GlebRadaev/finseed/internal/handlers/campaigns"
	operationshandlers "github.com/GlebRadaev/finseed/internal/handlers/operations"
	summaryhandlers "github.com/GlebRadaev/finseed/internal/handlers/summary"
	"github.com/GlebRadaev/finseed/internal/service"
)

//go:generate mockgen -source=handlers.go -destination=mock_handlers.go -package=handlers

type OperationsHandler interface {
	GetOperations(w http.ResponseWriter, r *http.Request)
}

type CampaignsHandler interface {
	GetAssignments(w http.ResponseWriter, r *http.Request)
}

type SummaryHandler interface {
	GetSummary(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	OperationsHandler OperationsHandler
	CampaignsHandler  CampaignsHandler
	SummaryHandler    SummaryHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		OperationsHandler: operationshandlers.New(s.OperationsService),
		CampaignsHandler:  campaignshandlers.New(s.CampaignsService),
		SummaryHandler:    summaryhandlers.New(s.SummaryService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Route("/api", func(r chi.Router) {
		r.Get("/users/{userID}/operations", h.OperationsHandler.GetOperations)
		r.Get("/campaigns/{campaignID}/assignments", h.CampaignsHandler.GetAssignments)
		r.Get("/summary", h.SummaryHandler.GetSummary)
	})

	return r
}
