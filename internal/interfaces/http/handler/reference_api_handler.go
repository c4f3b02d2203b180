package handler

import (
	"errors"
	"net/http"

	"github.com/autoguardian/vehicle-safety/internal/application/usecase"
	"github.com/autoguardian/vehicle-safety/internal/domain/repository"
	"github.com/autoguardian/vehicle-safety/internal/interfaces/http/middleware"
	"github.com/autoguardian/vehicle-safety/pkg/logger"
)

// ReferenceAPIHandler serves emergency services, manufacturer insights and
// the agent roster.
type ReferenceAPIHandler struct {
	emergencyUC *usecase.GetEmergencyOverviewUseCase
	bookUC      *usecase.BookServiceCenterUseCase
	insightsUC  *usecase.GetManufacturerInsightsUseCase
	agentsUC    *usecase.GetAgentStatusesUseCase
	logger      *logger.Logger
}

func NewReferenceAPIHandler(
	emergencyUC *usecase.GetEmergencyOverviewUseCase,
	bookUC *usecase.BookServiceCenterUseCase,
	insightsUC *usecase.GetManufacturerInsightsUseCase,
	agentsUC *usecase.GetAgentStatusesUseCase,
	logger *logger.Logger,
) *ReferenceAPIHandler {
	return &ReferenceAPIHandler{
		emergencyUC: emergencyUC,
		bookUC:      bookUC,
		insightsUC:  insightsUC,
		agentsUC:    agentsUC,
		logger:      logger,
	}
}

func (h *ReferenceAPIHandler) GetEmergency(w http.ResponseWriter, r *http.Request) {
	overview, err := h.emergencyUC.Execute(r.Context())
	if err != nil {
		h.logger.Error("Failed to load emergency overview", err)
		middleware.WriteError(w, http.StatusInternalServerError, "failed to load service centers")
		return
	}
	middleware.WriteJSON(w, http.StatusOK, overview)
}

func (h *ReferenceAPIHandler) BookServiceCenter(w http.ResponseWriter, r *http.Request) {
	center, err := h.bookUC.Execute(r.Context(), r.PathValue("id"))
	switch {
	case errors.Is(err, repository.ErrServiceCenterNotFound):
		middleware.WriteError(w, http.StatusNotFound, "service center not found")
		return
	case errors.Is(err, repository.ErrServiceCenterUnavailable):
		middleware.WriteError(w, http.StatusConflict, "service center unavailable")
		return
	case err != nil:
		h.logger.Error("Failed to book service center", err)
		middleware.WriteError(w, http.StatusInternalServerError, "failed to book service center")
		return
	}
	middleware.WriteJSON(w, http.StatusOK, center)
}

func (h *ReferenceAPIHandler) GetInsights(w http.ResponseWriter, r *http.Request) {
	insights, err := h.insightsUC.Execute(r.Context())
	if err != nil {
		h.logger.Error("Failed to load manufacturer insights", err)
		middleware.WriteError(w, http.StatusInternalServerError, "failed to load insights")
		return
	}
	middleware.WriteJSON(w, http.StatusOK, map[string]interface{}{"items": insights})
}

func (h *ReferenceAPIHandler) GetAgents(w http.ResponseWriter, r *http.Request) {
	agents, err := h.agentsUC.Execute(r.Context())
	if err != nil {
		h.logger.Error("Failed to load agent statuses", err)
		middleware.WriteError(w, http.StatusInternalServerError, "failed to load agents")
		return
	}
	middleware.WriteJSON(w, http.StatusOK, map[string]interface{}{"items": agents})
}
