package simulation

import (
	"context"
	"sync"
	"time"

	"github.com/autoguardian/vehicle-safety/internal/application/dto"
	"github.com/autoguardian/vehicle-safety/internal/application/port"
	"github.com/autoguardian/vehicle-safety/internal/application/usecase"
	"github.com/autoguardian/vehicle-safety/internal/domain/entity"
	"github.com/autoguardian/vehicle-safety/internal/domain/valueobject"
	"github.com/autoguardian/vehicle-safety/pkg/logger"
	"github.com/zoobzio/clockz"
)

// Publisher receives every state the controller publishes. alert is set only
// for the tick that raised it. Implementations must not block.
type Publisher interface {
	Publish(ctx context.Context, state *dto.SimulationStateDTO, alert *dto.AlertDTO)
}

const (
	commandToggleRun    = "toggle_run"
	commandToggleRegime = "toggle_regime"
	commandAcknowledge  = "acknowledge"
	commandClear        = "clear"
)

// Controller owns the simulation state and drives the telemetry pipeline on
// a fixed interval. Ticks and commands are serialized by runMu; readers take
// deep copies under mu.
type Controller struct {
	pipeline  *usecase.ProcessTelemetryUseCase
	clock     clockz.Clock
	interval  time.Duration
	publisher Publisher
	metrics   port.PipelineMetrics
	log       *logger.Logger

	runMu sync.Mutex

	mu         sync.RWMutex
	telemetry  *entity.TelemetrySnapshot
	analysis   *entity.RiskAnalysis
	actions    []*entity.SafetyAction
	history    *entity.AlertHistory
	regime     valueobject.Regime
	running    bool
	version    uint64
	tickCount  uint64
	startedAt  time.Time
	lastTickAt time.Time

	// wake re-arms the loop after the run flag changes
	wake chan struct{}

	lifecycleMu sync.Mutex
	cancel      context.CancelFunc
	done        chan struct{}
}

// NewController seeds the state with one normal-regime pass. The seed never
// raises an alert.
func NewController(pipeline *usecase.ProcessTelemetryUseCase, opts Options, log *logger.Logger) (*Controller, error) {
	opts, err := opts.withDefaults()
	if err != nil {
		return nil, err
	}

	regime := valueobject.RegimeNormal
	if opts.StartElevated {
		regime = valueobject.RegimeElevated
	}

	seed := pipeline.Execute(context.Background(), valueobject.RegimeNormal)
	now := opts.Clock.Now()

	return &Controller{
		pipeline:   pipeline,
		clock:      opts.Clock,
		interval:   opts.Interval,
		publisher:  opts.Publisher,
		metrics:    opts.Metrics,
		log:        log,
		telemetry:  seed.Telemetry,
		analysis:   seed.Analysis,
		actions:    seed.Actions,
		history:    entity.NewAlertHistory(opts.HistoryCapacity),
		regime:     regime,
		running:    opts.StartRunning,
		version:    1,
		startedAt:  now,
		lastTickAt: now,
		wake:       make(chan struct{}, 1),
	}, nil
}

func (c *Controller) Interval() time.Duration {
	return c.interval
}

// Start launches the scheduling loop. It returns ErrAlreadyStarted while a
// loop is active.
func (c *Controller) Start(ctx context.Context) error {
	c.lifecycleMu.Lock()
	defer c.lifecycleMu.Unlock()

	if c.cancel != nil {
		return ErrAlreadyStarted
	}

	loopCtx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	c.done = make(chan struct{})

	go c.loop(loopCtx, c.done)

	c.log.Info("Simulation controller started", "interval", c.interval.String())
	return nil
}

// Stop cancels the loop and waits for it to exit. Safe to call repeatedly.
func (c *Controller) Stop() {
	c.lifecycleMu.Lock()
	defer c.lifecycleMu.Unlock()

	if c.cancel == nil {
		return
	}

	c.cancel()
	<-c.done
	c.cancel = nil
	c.done = nil

	c.log.Info("Simulation controller stopped")
}

func (c *Controller) loop(ctx context.Context, done chan struct{}) {
	defer close(done)

	for {
		if !c.isRunning() {
			select {
			case <-ctx.Done():
				return
			case <-c.wake:
				continue
			}
		}

		select {
		case <-ctx.Done():
			return
		case <-c.wake:
			// run flag changed, re-arm a full interval
			continue
		case <-c.clock.After(c.interval):
			c.Tick(ctx)
		}
	}
}

// Tick runs one pipeline pass. It reports false, with no side effects, while
// paused.
func (c *Controller) Tick(ctx context.Context) bool {
	c.runMu.Lock()
	defer c.runMu.Unlock()

	c.mu.RLock()
	running, regime := c.running, c.regime
	c.mu.RUnlock()

	if !running {
		return false
	}

	result := c.pipeline.Execute(ctx, regime)
	now := c.clock.Now()

	c.mu.Lock()
	c.telemetry = result.Telemetry
	c.analysis = result.Analysis
	c.actions = result.Actions
	if result.Alert != nil {
		c.history.Prepend(result.Alert)
	}
	c.tickCount++
	c.version++
	c.lastTickAt = now
	state := c.snapshotLocked()
	c.mu.Unlock()

	if c.metrics != nil {
		c.metrics.ObserveTick(result.Analysis.Level().String(), result.Analysis.Score())
	}

	var alert *dto.AlertDTO
	if result.Alert != nil {
		converted := dto.FromAlert(result.Alert)
		alert = &converted
	}
	c.publish(ctx, state, alert)

	return true
}

// ToggleRun flips between running and paused and returns the new flag.
func (c *Controller) ToggleRun() bool {
	c.runMu.Lock()
	defer c.runMu.Unlock()

	c.mu.Lock()
	c.running = !c.running
	running := c.running
	c.version++
	state := c.snapshotLocked()
	c.mu.Unlock()

	select {
	case c.wake <- struct{}{}:
	default:
	}

	c.log.Info("Simulation run toggled", "running", running)
	c.observeCommand(commandToggleRun)
	c.publish(context.Background(), state, nil)

	return running
}

// ToggleRegime flips the regime used from the next tick on.
func (c *Controller) ToggleRegime() valueobject.Regime {
	c.runMu.Lock()
	defer c.runMu.Unlock()

	c.mu.Lock()
	c.regime = c.regime.Toggle()
	regime := c.regime
	c.version++
	state := c.snapshotLocked()
	c.mu.Unlock()

	c.log.Info("Simulation regime toggled", "regime", regime.String())
	c.observeCommand(commandToggleRegime)
	c.publish(context.Background(), state, nil)

	return regime
}

// Acknowledge marks the alert with id as acknowledged. Unknown ids are a
// no-op and return false.
func (c *Controller) Acknowledge(id string) bool {
	c.runMu.Lock()
	defer c.runMu.Unlock()

	c.mu.Lock()
	if !c.history.Acknowledge(id) {
		c.mu.Unlock()
		c.log.Debug("Acknowledge ignored, unknown alert", "alert_id", id)
		return false
	}
	c.version++
	state := c.snapshotLocked()
	c.mu.Unlock()

	c.observeCommand(commandAcknowledge)
	c.publish(context.Background(), state, nil)

	return true
}

// Clear empties the alert history.
func (c *Controller) Clear() {
	c.runMu.Lock()
	defer c.runMu.Unlock()

	c.mu.Lock()
	c.history.Clear()
	c.version++
	state := c.snapshotLocked()
	c.mu.Unlock()

	c.log.Info("Alert history cleared")
	c.observeCommand(commandClear)
	c.publish(context.Background(), state, nil)
}

// Snapshot returns a deep copy of the current state.
func (c *Controller) Snapshot() *dto.SimulationStateDTO {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snapshotLocked()
}

func (c *Controller) snapshotLocked() *dto.SimulationStateDTO {
	state := &dto.SimulationStateDTO{
		Version:         c.version,
		TickCount:       c.tickCount,
		Running:         c.running,
		Regime:          c.regime.String(),
		HighRiskMode:    c.regime.IsElevated(),
		Telemetry:       dto.FromTelemetry(c.telemetry),
		Risk:            dto.FromRiskAnalysis(c.analysis),
		Actions:         dto.FromSafetyActions(c.actions),
		OptimizerActive: c.analysis != nil && c.analysis.Level().IsElevated(),
		Alerts:          dto.FromAlerts(c.history.Items()),
		StartedAt:       c.startedAt,
		LastTickAt:      c.lastTickAt,
		TickIntervalMs:  c.interval.Milliseconds(),
	}

	for i := range state.Actions {
		if state.Actions[i].Selected {
			selected := state.Actions[i]
			state.SelectedAction = &selected
			break
		}
	}

	return state
}

func (c *Controller) isRunning() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.running
}

func (c *Controller) observeCommand(command string) {
	if c.metrics != nil {
		c.metrics.ObserveCommand(command)
	}
}

func (c *Controller) publish(ctx context.Context, state *dto.SimulationStateDTO, alert *dto.AlertDTO) {
	if c.publisher == nil {
		return
	}
	c.publisher.Publish(ctx, state, alert)
}
