package http

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/autoguardian/vehicle-safety/internal/application/dto"
	"github.com/autoguardian/vehicle-safety/internal/application/usecase"
	"github.com/autoguardian/vehicle-safety/internal/domain/entity"
	"github.com/autoguardian/vehicle-safety/internal/domain/service"
	"github.com/autoguardian/vehicle-safety/internal/domain/valueobject"
	"github.com/autoguardian/vehicle-safety/internal/infrastructure/notification/websocket"
	"github.com/autoguardian/vehicle-safety/internal/infrastructure/observability/metrics"
	"github.com/autoguardian/vehicle-safety/internal/infrastructure/persistence/memory"
	"github.com/autoguardian/vehicle-safety/internal/interfaces/http/handler"
	"github.com/autoguardian/vehicle-safety/internal/simulation"
	"github.com/autoguardian/vehicle-safety/pkg/config"
	"github.com/autoguardian/vehicle-safety/pkg/logger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zoobzio/clockz"
)

// fixedSource returns a calm snapshot for the normal regime and a critical
// one for the elevated regime.
type fixedSource struct{}

func (fixedSource) Generate(regime valueobject.Regime) *entity.TelemetrySnapshot {
	if regime == valueobject.RegimeElevated {
		return entity.NewTelemetrySnapshot(150, 240, valueobject.NewTirePressure(26, 33, 33, 15), 125, 40, 15, time.Time{})
	}
	return entity.NewTelemetrySnapshot(80, 105, valueobject.NewTirePressure(34, 34, 34, 34), 95, 92.5, 65, time.Time{})
}

type testServer struct {
	server     *httptest.Server
	controller *simulation.Controller
	hub        *websocket.Hub
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	log := logger.New("error")
	clock := clockz.NewFakeClock()

	registry := prometheus.NewRegistry()
	m := metrics.New(registry)

	hub := websocket.NewHub(log)
	publisher := usecase.NewPublishStateUseCase(hub, usecase.PublishStateConfig{
		Metrics: m,
		Now:     clock.Now,
	}, log)

	pipeline := usecase.NewProcessTelemetryUseCase(
		fixedSource{},
		service.NewRiskScorer(),
		service.NewActionRanker(),
		service.NewAlertGeneratorWith(func() string { return "alert-1" }, clock.Now),
		log,
	)

	controller, err := simulation.NewController(pipeline, simulation.Options{
		Interval:        time.Second,
		HistoryCapacity: 10,
		StartRunning:    true,
		Clock:           clock,
		Publisher:       publisher,
		Metrics:         m,
	}, log)
	require.NoError(t, err)

	centers := memory.NewDefaultServiceCenterRepository()
	insights := memory.NewDefaultInsightRepository()

	handlers := Handlers{
		Dashboard:  handler.NewDashboardHandler(StaticFS(), log),
		WebSocket:  handler.NewWebSocketHandler(hub, controller, []string{"http://localhost:8080"}, log),
		Simulation: handler.NewSimulationAPIHandler(controller, log),
		Reference: handler.NewReferenceAPIHandler(
			usecase.NewGetEmergencyOverviewUseCase(centers, controller, log),
			usecase.NewBookServiceCenterUseCase(centers, log),
			usecase.NewGetManufacturerInsightsUseCase(insights),
			usecase.NewGetAgentStatusesUseCase(insights, controller),
			log,
		),
		Health: handler.NewHealthHandler(controller, controller.Interval(), clock.Now),
	}

	security := config.SecurityConfig{
		AllowedOrigins:   []string{"http://localhost:8080"},
		CommandRateLimit: 100,
		CommandBurst:     100,
	}

	server := httptest.NewServer(NewRouter(handlers, m, security, log).Setup())
	t.Cleanup(server.Close)

	return &testServer{server: server, controller: controller, hub: hub}
}

func (s *testServer) do(t *testing.T, method, path string) (int, []byte) {
	t.Helper()

	req, err := http.NewRequest(method, s.server.URL+path, nil)
	require.NoError(t, err)

	resp, err := s.server.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, body
}

func (s *testServer) decode(t *testing.T, method, path string, wantStatus int, out interface{}) {
	t.Helper()

	status, body := s.do(t, method, path)
	require.Equalf(t, wantStatus, status, "%s %s: %s", method, path, body)
	if out != nil {
		require.NoError(t, json.Unmarshal(body, out))
	}
}

func TestE2E_InitialStateAndProbes(t *testing.T) {
	ts := newTestServer(t)

	var state dto.SimulationStateDTO
	ts.decode(t, http.MethodGet, "/api/v1/simulation/state", http.StatusOK, &state)

	assert.Equal(t, uint64(1), state.Version)
	assert.True(t, state.Running)
	assert.Equal(t, "normal", state.Regime)
	assert.Equal(t, "LOW", state.Risk.Level)
	assert.Empty(t, state.Alerts)
	assert.Len(t, state.Actions, 4)
	assert.Equal(t, int64(1000), state.TickIntervalMs)

	var health map[string]interface{}
	ts.decode(t, http.MethodGet, "/healthz", http.StatusOK, &health)
	assert.Equal(t, "ok", health["status"])

	ts.decode(t, http.MethodGet, "/readyz", http.StatusOK, nil)
}

func TestE2E_ElevatedTickRaisesAlertAndAcknowledge(t *testing.T) {
	ts := newTestServer(t)

	var regime struct {
		Regime string                 `json:"regime"`
		State  dto.SimulationStateDTO `json:"state"`
	}
	ts.decode(t, http.MethodPost, "/api/v1/simulation/regime/toggle", http.StatusOK, &regime)
	assert.Equal(t, "elevated", regime.Regime)
	assert.True(t, regime.State.HighRiskMode)
	// the regime applies at the next tick
	assert.Equal(t, "LOW", regime.State.Risk.Level)

	var state dto.SimulationStateDTO
	ts.decode(t, http.MethodPost, "/api/v1/simulation/tick", http.StatusOK, &state)
	assert.Equal(t, "CRITICAL", state.Risk.Level)
	assert.Equal(t, 100, state.Risk.Score)
	require.Len(t, state.Alerts, 1)
	assert.Equal(t, "alert-1", state.Alerts[0].ID)
	assert.Equal(t, "critical", state.Alerts[0].Type)
	require.NotNil(t, state.SelectedAction)
	assert.Equal(t, "Emergency Service", state.SelectedAction.Name)
	assert.True(t, state.OptimizerActive)

	var emergency dto.EmergencyOverviewDTO
	ts.decode(t, http.MethodGet, "/api/v1/emergency", http.StatusOK, &emergency)
	assert.True(t, emergency.EmergencyActive)
	assert.Equal(t, "CRITICAL", emergency.RiskLevel)

	var ack struct {
		ID           string `json:"id"`
		Acknowledged bool   `json:"acknowledged"`
	}
	ts.decode(t, http.MethodPost, "/api/v1/alerts/alert-1/acknowledge", http.StatusOK, &ack)
	assert.True(t, ack.Acknowledged)

	ts.decode(t, http.MethodPost, "/api/v1/alerts/missing/acknowledge", http.StatusOK, &ack)
	assert.Equal(t, "missing", ack.ID)
	assert.False(t, ack.Acknowledged)

	snapshot := ts.controller.Snapshot()
	require.Len(t, snapshot.Alerts, 1)
	assert.True(t, snapshot.Alerts[0].Acknowledged)

	ts.decode(t, http.MethodPost, "/api/v1/alerts/clear", http.StatusOK, nil)
	assert.Empty(t, ts.controller.Snapshot().Alerts)
}

func TestE2E_PausedTickConflicts(t *testing.T) {
	ts := newTestServer(t)

	var toggled struct {
		Running bool `json:"running"`
	}
	ts.decode(t, http.MethodPost, "/api/v1/simulation/run/toggle", http.StatusOK, &toggled)
	assert.False(t, toggled.Running)

	before := ts.controller.Snapshot()
	ts.decode(t, http.MethodPost, "/api/v1/simulation/tick", http.StatusConflict, nil)
	assert.Equal(t, before.TickCount, ts.controller.Snapshot().TickCount)

	// paused simulations stay ready regardless of tick age
	ts.decode(t, http.MethodGet, "/readyz", http.StatusOK, nil)
}

func TestE2E_ServiceCenterBooking(t *testing.T) {
	ts := newTestServer(t)

	var center dto.ServiceCenterDTO
	ts.decode(t, http.MethodPost, "/api/v1/emergency/service-centers/1/book", http.StatusOK, &center)
	assert.Equal(t, "1", center.ID)
	assert.True(t, center.Booked)

	ts.decode(t, http.MethodPost, "/api/v1/emergency/service-centers/4/book", http.StatusConflict, nil)
	ts.decode(t, http.MethodPost, "/api/v1/emergency/service-centers/99/book", http.StatusNotFound, nil)

	var emergency dto.EmergencyOverviewDTO
	ts.decode(t, http.MethodGet, "/api/v1/emergency", http.StatusOK, &emergency)
	assert.Equal(t, "1", emergency.BookedCenterID)
	assert.False(t, emergency.EmergencyActive)
	assert.Len(t, emergency.ServiceCenters, 4)
}

func TestE2E_ReferenceLists(t *testing.T) {
	ts := newTestServer(t)

	var insights struct {
		Items []dto.ManufacturerInsightDTO `json:"items"`
	}
	ts.decode(t, http.MethodGet, "/api/v1/insights", http.StatusOK, &insights)
	assert.NotEmpty(t, insights.Items)

	var agents struct {
		Items []dto.AgentStatusDTO `json:"items"`
	}
	ts.decode(t, http.MethodGet, "/api/v1/agents", http.StatusOK, &agents)
	assert.NotEmpty(t, agents.Items)
}

func TestE2E_DashboardAndStatic(t *testing.T) {
	ts := newTestServer(t)

	status, body := ts.do(t, http.MethodGet, "/")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(body), "Vehicle Safety Monitor")

	status, body = ts.do(t, http.MethodGet, "/static/js/app.js")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(body), "/ws")

	status, _ = ts.do(t, http.MethodGet, "/nope")
	assert.Equal(t, http.StatusNotFound, status)
}

func TestE2E_MetricsExposeActivity(t *testing.T) {
	ts := newTestServer(t)

	ts.decode(t, http.MethodPost, "/api/v1/simulation/regime/toggle", http.StatusOK, nil)
	ts.decode(t, http.MethodPost, "/api/v1/simulation/tick", http.StatusOK, nil)

	status, body := ts.do(t, http.MethodGet, "/metrics")
	require.Equal(t, http.StatusOK, status)

	text := string(body)
	for _, want := range []string{
		`vehicle_safety_ticks_total{level="CRITICAL"} 1`,
		`vehicle_safety_alerts_total{severity="critical"} 1`,
		`vehicle_safety_commands_total{command="toggle_regime"} 1`,
		`route="/api/v1/simulation/tick"`,
	} {
		assert.Truef(t, strings.Contains(text, want), "metrics output missing %s", want)
	}
}

func TestE2E_RequestIDHeader(t *testing.T) {
	ts := newTestServer(t)

	resp, err := ts.server.Client().Get(ts.server.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.NotEmpty(t, resp.Header.Get("X-Request-Id"))
}

func TestE2E_WebSocketRejectsForeignOrigin(t *testing.T) {
	ts := newTestServer(t)

	req, err := http.NewRequest(http.MethodGet, ts.server.URL+"/ws", nil)
	require.NoError(t, err)
	req.Header.Set("Connection", "Upgrade")
	req.Header.Set("Upgrade", "websocket")
	req.Header.Set("Sec-WebSocket-Version", "13")
	req.Header.Set("Sec-WebSocket-Key", "dGhlIHNhbXBsZSBub25jZQ==")
	req.Header.Set("Origin", "http://evil.example")

	resp, err := ts.server.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, 0, ts.hub.ClientCount())
}
