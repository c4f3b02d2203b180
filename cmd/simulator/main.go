package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"

	"github.com/autoguardian/vehicle-safety/internal/application/dto"
	"github.com/autoguardian/vehicle-safety/internal/application/port"
	"github.com/autoguardian/vehicle-safety/internal/application/usecase"
	"github.com/autoguardian/vehicle-safety/internal/domain/service"
	"github.com/autoguardian/vehicle-safety/internal/infrastructure/collector"
	natsInfra "github.com/autoguardian/vehicle-safety/internal/infrastructure/messaging/nats"
	"github.com/autoguardian/vehicle-safety/internal/infrastructure/voice"
	"github.com/autoguardian/vehicle-safety/internal/simulation"
	"github.com/autoguardian/vehicle-safety/pkg/config"
	"github.com/autoguardian/vehicle-safety/pkg/logger"

	"github.com/google/uuid"
	"github.com/zoobzio/clockz"
)

// stateLogger logs every published state and forwards it downstream. done is
// closed once limit ticks were observed; a zero limit never closes it.
type stateLogger struct {
	next  *usecase.PublishStateUseCase
	log   *logger.Logger
	limit uint64
	seen  atomic.Uint64
	done  chan struct{}
}

func (s *stateLogger) Publish(ctx context.Context, state *dto.SimulationStateDTO, alert *dto.AlertDTO) {
	fields := []interface{}{
		"tick", state.TickCount,
		"regime", state.Regime,
		"score", state.Risk.Score,
		"level", state.Risk.Level,
		"root_cause", state.Risk.RootCause,
		"speed", state.Telemetry.Speed,
		"brake_temperature", state.Telemetry.BrakeTemperature,
	}
	if state.SelectedAction != nil {
		fields = append(fields, "action", state.SelectedAction.Name)
	}
	if alert != nil {
		fields = append(fields, "alert", alert.Title, "severity", alert.Type)
	}
	s.log.Info("Simulation state", fields...)

	s.next.Publish(ctx, state, alert)

	if s.limit > 0 && state.TickCount >= s.limit && s.seen.CompareAndSwap(0, state.TickCount) {
		close(s.done)
	}
}

func main() {
	ticks := flag.Uint64("ticks", 0, "stop after this many ticks (0 runs until interrupted)")
	elevated := flag.Bool("elevated", false, "start in the elevated regime")
	seed := flag.Uint64("seed", 0, "telemetry seed, 0 keeps SIMULATION_SEED")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *seed != 0 {
		cfg.Simulation.Seed = *seed
	}

	log := logger.NewWithFormat(cfg.Log.Level, cfg.Log.Format, "vehicle-simulator")
	defer func() { _ = log.Sync() }()

	clock := clockz.RealClock

	var alertPublisher port.EventPublisher
	if cfg.NATS.Enabled {
		natsPublisher, err := natsInfra.NewNATSPublisher(natsInfra.PublisherConfig{
			URL:           cfg.NATS.URL,
			SubjectPrefix: cfg.NATS.SubjectPrefix,
		}, log)
		if err != nil {
			log.Error("Failed to connect to NATS", err)
			os.Exit(1)
		}
		defer natsPublisher.Close()
		alertPublisher = natsPublisher
	}

	var announcer *usecase.AnnounceAlertUseCase
	if cfg.Voice.Enabled {
		player := voice.NewLogPlayer(clock, cfg.Voice.Rate, cfg.Voice.WordsPerMinute, log)
		announcer = usecase.NewAnnounceAlertUseCase(player, nil, log)
		defer announcer.Stop()
	}

	pipeline := usecase.NewProcessTelemetryUseCase(
		collector.NewTelemetryGenerator(cfg.Simulation.Seed, clock),
		service.NewRiskScorer(),
		service.NewActionRanker(),
		service.NewAlertGeneratorWith(uuid.NewString, clock.Now),
		log,
	)

	publisher := &stateLogger{
		next: usecase.NewPublishStateUseCase(nil, usecase.PublishStateConfig{
			Publisher:     alertPublisher,
			SubjectPrefix: cfg.NATS.SubjectPrefix,
			Announcer:     announcer,
			Now:           clock.Now,
		}, log),
		log:   log,
		limit: *ticks,
		done:  make(chan struct{}),
	}

	controller, err := simulation.NewController(pipeline, simulation.Options{
		Interval:        cfg.Simulation.TickInterval,
		HistoryCapacity: cfg.Simulation.HistoryCapacity,
		StartRunning:    true,
		StartElevated:   *elevated || cfg.Simulation.StartElevated,
		Clock:           clock,
		Publisher:       publisher,
	}, log)
	if err != nil {
		log.Error("Failed to create simulation controller", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := controller.Start(ctx); err != nil {
		log.Error("Failed to start simulation", err)
		os.Exit(1)
	}
	log.Info("Simulator started", "interval", controller.Interval().String(), "ticks", *ticks)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case <-sigCh:
		log.Info("Shutdown signal received")
	case <-publisher.done:
		log.Info("Tick limit reached")
	}

	controller.Stop()
	log.Info("Simulator stopped", "ticks", controller.Snapshot().TickCount)
}
