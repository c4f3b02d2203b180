package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	// Application
	"github.com/autoguardian/vehicle-safety/internal/application/port"
	"github.com/autoguardian/vehicle-safety/internal/application/usecase"

	// Domain
	"github.com/autoguardian/vehicle-safety/internal/domain/service"

	// Infrastructure
	"github.com/autoguardian/vehicle-safety/internal/infrastructure/collector"
	natsInfra "github.com/autoguardian/vehicle-safety/internal/infrastructure/messaging/nats"
	wsInfra "github.com/autoguardian/vehicle-safety/internal/infrastructure/notification/websocket"
	"github.com/autoguardian/vehicle-safety/internal/infrastructure/observability/metrics"
	"github.com/autoguardian/vehicle-safety/internal/infrastructure/persistence/memory"
	"github.com/autoguardian/vehicle-safety/internal/infrastructure/voice"

	// Interfaces
	httpInterface "github.com/autoguardian/vehicle-safety/internal/interfaces/http"
	"github.com/autoguardian/vehicle-safety/internal/interfaces/http/handler"

	// Simulation
	"github.com/autoguardian/vehicle-safety/internal/simulation"

	// Shared
	"github.com/autoguardian/vehicle-safety/pkg/config"
	"github.com/autoguardian/vehicle-safety/pkg/logger"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/zoobzio/clockz"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// 2. Logger
	log := logger.NewWithFormat(cfg.Log.Level, cfg.Log.Format, "vehicle-safety")
	defer func() { _ = log.Sync() }()
	log.Info("Starting Vehicle Safety Monitor",
		"tick_interval", cfg.Simulation.TickInterval.String(),
		"history_capacity", cfg.Simulation.HistoryCapacity,
	)

	clock := clockz.RealClock

	// 3. Dependency Injection - Infrastructure Layer

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	pipelineMetrics := metrics.New(registry)

	telemetrySource := collector.NewTelemetryGenerator(cfg.Simulation.Seed, clock)

	hub := wsInfra.NewHub(log)

	var alertPublisher port.EventPublisher
	if cfg.NATS.Enabled {
		natsPublisher, err := natsInfra.NewNATSPublisher(natsInfra.PublisherConfig{
			URL:           cfg.NATS.URL,
			SubjectPrefix: cfg.NATS.SubjectPrefix,
			OnAsyncError: func(subject string, err error) {
				log.Error("Alert event rejected by broker", err, "subject", subject)
				pipelineMetrics.ObservePublishFailure()
			},
		}, log)
		if err != nil {
			log.Error("Failed to connect to NATS", err)
			os.Exit(1)
		}
		defer natsPublisher.Close()
		alertPublisher = natsPublisher
	} else {
		log.Warn("NATS is disabled, alert events will not leave the process")
	}

	centerRepository := memory.NewDefaultServiceCenterRepository()
	insightRepository := memory.NewDefaultInsightRepository()

	// 4. Dependency Injection - Domain Layer

	riskScorer := service.NewRiskScorer()
	actionRanker := service.NewActionRanker()
	alertGenerator := service.NewAlertGeneratorWith(uuid.NewString, clock.Now)

	// 5. Dependency Injection - Application Layer (Use Cases)

	processTelemetryUC := usecase.NewProcessTelemetryUseCase(
		telemetrySource,
		riskScorer,
		actionRanker,
		alertGenerator,
		log,
	)

	var announcer *usecase.AnnounceAlertUseCase
	if cfg.Voice.Enabled {
		player := voice.NewLogPlayer(clock, cfg.Voice.Rate, cfg.Voice.WordsPerMinute, log)
		announcer = usecase.NewAnnounceAlertUseCase(player, pipelineMetrics, log)
		defer announcer.Stop()
	}

	publishStateUC := usecase.NewPublishStateUseCase(hub, usecase.PublishStateConfig{
		Publisher:     alertPublisher,
		SubjectPrefix: cfg.NATS.SubjectPrefix,
		Metrics:       pipelineMetrics,
		Announcer:     announcer,
		Now:           clock.Now,
	}, log)

	controller, err := simulation.NewController(processTelemetryUC, simulation.Options{
		Interval:        cfg.Simulation.TickInterval,
		HistoryCapacity: cfg.Simulation.HistoryCapacity,
		StartRunning:    cfg.Simulation.StartRunning,
		StartElevated:   cfg.Simulation.StartElevated,
		Clock:           clock,
		Publisher:       publishStateUC,
		Metrics:         pipelineMetrics,
	}, log)
	if err != nil {
		log.Error("Failed to create simulation controller", err)
		os.Exit(1)
	}

	emergencyUC := usecase.NewGetEmergencyOverviewUseCase(centerRepository, controller, log)
	bookServiceCenterUC := usecase.NewBookServiceCenterUseCase(centerRepository, log)
	insightsUC := usecase.NewGetManufacturerInsightsUseCase(insightRepository)
	agentStatusesUC := usecase.NewGetAgentStatusesUseCase(insightRepository, controller)

	// 6. Dependency Injection - Interfaces Layer (HTTP Handlers)

	handlers := httpInterface.Handlers{
		Dashboard:  handler.NewDashboardHandler(httpInterface.StaticFS(), log),
		WebSocket:  handler.NewWebSocketHandler(hub, controller, cfg.Security.AllowedOrigins, log),
		Simulation: handler.NewSimulationAPIHandler(controller, log),
		Reference: handler.NewReferenceAPIHandler(
			emergencyUC,
			bookServiceCenterUC,
			insightsUC,
			agentStatusesUC,
			log,
		),
		Health: handler.NewHealthHandler(controller, controller.Interval(), clock.Now),
	}

	router := httpInterface.NewRouter(handlers, pipelineMetrics, cfg.Security, log)

	// 7. Background processes

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go hub.Run(ctx)
	log.Info("WebSocket hub started")

	if err := controller.Start(ctx); err != nil {
		log.Error("Failed to start simulation", err)
		os.Exit(1)
	}

	// 8. HTTP server

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router.Setup(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Info("HTTP server starting", "port", cfg.Server.Port)
		log.Info("Dashboard available at http://localhost:" + cfg.Server.Port)

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server failed", err)
			os.Exit(1)
		}
	}()

	// 9. Graceful shutdown

	<-sigChan
	log.Info("Shutdown signal received, starting graceful shutdown...")

	controller.Stop()
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown error", err)
	}

	log.Info("Server stopped gracefully")
}
