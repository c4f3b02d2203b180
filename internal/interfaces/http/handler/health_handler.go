package handler

import (
	"net/http"
	"time"

	"github.com/autoguardian/vehicle-safety/internal/application/port"
	"github.com/autoguardian/vehicle-safety/internal/interfaces/http/middleware"
)

// staleTicks is how many intervals may pass without a tick before a running
// simulation reports not ready.
const staleTicks = 3

type HealthHandler struct {
	state    port.StateReader
	interval time.Duration
	now      func() time.Time
}

// NewHealthHandler uses time.Now when now is nil.
func NewHealthHandler(state port.StateReader, interval time.Duration, now func() time.Time) *HealthHandler {
	if now == nil {
		now = time.Now
	}
	return &HealthHandler{state: state, interval: interval, now: now}
}

func (h *HealthHandler) Healthz(w http.ResponseWriter, _ *http.Request) {
	state := h.state.Snapshot()

	middleware.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"status":     "ok",
		"uptime":     h.now().Sub(state.StartedAt).Round(time.Second).String(),
		"last_tick":  state.LastTickAt.UTC().Format(time.RFC3339),
		"tick_count": state.TickCount,
	})
}

func (h *HealthHandler) Readyz(w http.ResponseWriter, _ *http.Request) {
	state := h.state.Snapshot()

	if state.Running && h.now().Sub(state.LastTickAt) > h.interval*staleTicks {
		middleware.WriteError(w, http.StatusServiceUnavailable, "not ready: stale simulation tick")
		return
	}

	middleware.WriteJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}
