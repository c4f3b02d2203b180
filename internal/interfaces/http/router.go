package http

import (
	"io/fs"
	"net/http"

	"github.com/autoguardian/vehicle-safety/internal/infrastructure/observability/metrics"
	"github.com/autoguardian/vehicle-safety/internal/interfaces/http/handler"
	"github.com/autoguardian/vehicle-safety/internal/interfaces/http/middleware"
	"github.com/autoguardian/vehicle-safety/pkg/config"
	"github.com/autoguardian/vehicle-safety/pkg/logger"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Dashboard  *handler.DashboardHandler
	WebSocket  *handler.WebSocketHandler
	Simulation *handler.SimulationAPIHandler
	Reference  *handler.ReferenceAPIHandler
	Health     *handler.HealthHandler
}

// Router wires routes and middleware.
type Router struct {
	mux      *http.ServeMux
	handlers Handlers
	metrics  *metrics.Metrics
	security config.SecurityConfig
	logger   *logger.Logger
}

// NewRouter accepts a nil metrics bundle; /metrics is then not mounted.
func NewRouter(handlers Handlers, metrics *metrics.Metrics, security config.SecurityConfig, logger *logger.Logger) *Router {
	return &Router{
		mux:      http.NewServeMux(),
		handlers: handlers,
		metrics:  metrics,
		security: security,
		logger:   logger,
	}
}

// StaticFS returns the embedded dashboard assets.
func StaticFS() fs.FS {
	staticFS, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic("failed to initialize embedded static assets: " + err.Error())
	}
	return staticFS
}

func (rt *Router) Setup() http.Handler {
	read := middleware.Compression

	var onLimited func()
	if rt.metrics != nil {
		onLimited = rt.metrics.ObserveRateLimited
	}
	command := middleware.RateLimit(
		middleware.NewIPRateLimiter(rt.security.CommandRateLimit, rt.security.CommandBurst),
		onLimited,
	)

	// Static assets
	rt.mux.Handle("GET /static/", read(http.StripPrefix("/static/", http.FileServerFS(StaticFS()))))
	rt.mux.Handle("GET /{$}", read(http.HandlerFunc(rt.handlers.Dashboard.ShowDashboard)))

	// Probes
	rt.mux.HandleFunc("GET /healthz", rt.handlers.Health.Healthz)
	rt.mux.HandleFunc("GET /readyz", rt.handlers.Health.Readyz)
	if rt.metrics != nil {
		rt.mux.Handle("GET /metrics", rt.metrics.Handler())
	}

	// WebSocket
	rt.mux.HandleFunc("GET /ws", rt.handlers.WebSocket.HandleConnection)

	// Simulation
	sim := rt.handlers.Simulation
	rt.mux.Handle("GET /api/v1/simulation/state", read(http.HandlerFunc(sim.GetState)))
	rt.mux.Handle("POST /api/v1/simulation/run/toggle", command(http.HandlerFunc(sim.ToggleRun)))
	rt.mux.Handle("POST /api/v1/simulation/regime/toggle", command(http.HandlerFunc(sim.ToggleRegime)))
	rt.mux.Handle("POST /api/v1/simulation/tick", command(http.HandlerFunc(sim.Tick)))
	rt.mux.Handle("POST /api/v1/alerts/{id}/acknowledge", command(http.HandlerFunc(sim.Acknowledge)))
	rt.mux.Handle("POST /api/v1/alerts/clear", command(http.HandlerFunc(sim.ClearAlerts)))

	// Reference data
	ref := rt.handlers.Reference
	rt.mux.Handle("GET /api/v1/emergency", read(http.HandlerFunc(ref.GetEmergency)))
	rt.mux.Handle("POST /api/v1/emergency/service-centers/{id}/book", command(http.HandlerFunc(ref.BookServiceCenter)))
	rt.mux.Handle("GET /api/v1/insights", read(http.HandlerFunc(ref.GetInsights)))
	rt.mux.Handle("GET /api/v1/agents", read(http.HandlerFunc(ref.GetAgents)))

	// outermost last
	var handler http.Handler = rt.mux
	handler = middleware.Logger(rt.logger)(handler)
	if rt.metrics != nil {
		handler = rt.metrics.Middleware(handler)
	}
	handler = middleware.Recovery(rt.logger)(handler)
	handler = middleware.RequestID(handler)

	return handler
}
