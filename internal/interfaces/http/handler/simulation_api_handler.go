package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/autoguardian/vehicle-safety/internal/application/port"
	"github.com/autoguardian/vehicle-safety/internal/domain/valueobject"
	"github.com/autoguardian/vehicle-safety/internal/interfaces/http/middleware"
	"github.com/autoguardian/vehicle-safety/pkg/logger"
)

// SimulationController is the command surface of the simulation.
type SimulationController interface {
	port.StateReader
	Tick(ctx context.Context) bool
	ToggleRun() bool
	ToggleRegime() valueobject.Regime
	Acknowledge(id string) bool
	Clear()
}

// SimulationAPIHandler exposes state reads and controller commands.
type SimulationAPIHandler struct {
	controller SimulationController
	logger     *logger.Logger
}

func NewSimulationAPIHandler(controller SimulationController, logger *logger.Logger) *SimulationAPIHandler {
	return &SimulationAPIHandler{controller: controller, logger: logger}
}

func (h *SimulationAPIHandler) GetState(w http.ResponseWriter, _ *http.Request) {
	middleware.WriteJSON(w, http.StatusOK, h.controller.Snapshot())
}

func (h *SimulationAPIHandler) ToggleRun(w http.ResponseWriter, _ *http.Request) {
	running := h.controller.ToggleRun()
	middleware.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"running": running,
		"state":   h.controller.Snapshot(),
	})
}

func (h *SimulationAPIHandler) ToggleRegime(w http.ResponseWriter, _ *http.Request) {
	regime := h.controller.ToggleRegime()
	middleware.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"regime": regime.String(),
		"state":  h.controller.Snapshot(),
	})
}

// Tick forces one pipeline pass. A paused simulation answers 409.
func (h *SimulationAPIHandler) Tick(w http.ResponseWriter, r *http.Request) {
	if !h.controller.Tick(r.Context()) {
		middleware.WriteError(w, http.StatusConflict, "simulation is paused")
		return
	}
	middleware.WriteJSON(w, http.StatusOK, h.controller.Snapshot())
}

// Acknowledge answers 200 for unknown ids too; the body tells whether a
// matching alert existed.
func (h *SimulationAPIHandler) Acknowledge(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(r.PathValue("id"))
	if id == "" {
		middleware.WriteError(w, http.StatusBadRequest, "missing alert id")
		return
	}

	acknowledged := h.controller.Acknowledge(id)
	middleware.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"id":           id,
		"acknowledged": acknowledged,
	})
}

func (h *SimulationAPIHandler) ClearAlerts(w http.ResponseWriter, _ *http.Request) {
	h.controller.Clear()
	middleware.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"cleared": true,
	})
}
