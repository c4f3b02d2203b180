package usecase

import (
	"context"

	"github.com/autoguardian/vehicle-safety/internal/application/port"
	"github.com/autoguardian/vehicle-safety/internal/domain/entity"
	"github.com/autoguardian/vehicle-safety/internal/domain/service"
	"github.com/autoguardian/vehicle-safety/internal/domain/valueobject"
	"github.com/autoguardian/vehicle-safety/pkg/logger"
)

// TickResult is everything one pipeline pass produces. Alert is nil when the
// analysis is LOW.
type TickResult struct {
	Telemetry *entity.TelemetrySnapshot
	Analysis  *entity.RiskAnalysis
	Actions   []*entity.SafetyAction
	Alert     *entity.Alert
}

// ProcessTelemetryUseCase runs generate, score, rank and alert for one tick.
type ProcessTelemetryUseCase struct {
	source    port.TelemetrySource
	scorer    *service.RiskScorer
	ranker    *service.ActionRanker
	generator *service.AlertGenerator
	logger    *logger.Logger
}

func NewProcessTelemetryUseCase(
	source port.TelemetrySource,
	scorer *service.RiskScorer,
	ranker *service.ActionRanker,
	generator *service.AlertGenerator,
	logger *logger.Logger,
) *ProcessTelemetryUseCase {
	return &ProcessTelemetryUseCase{
		source:    source,
		scorer:    scorer,
		ranker:    ranker,
		generator: generator,
		logger:    logger,
	}
}

// Execute never fails; every stage is a total function.
func (uc *ProcessTelemetryUseCase) Execute(_ context.Context, regime valueobject.Regime) *TickResult {
	// 1. Telemetry for the requested regime
	telemetry := uc.source.Generate(regime)

	// 2. Risk score
	analysis := uc.scorer.Score(telemetry)

	// 3. Ranked actions
	actions := uc.ranker.Rank(analysis)

	// 4. Alert, only above LOW
	alert := uc.generator.MaybeGenerate(analysis)

	uc.logger.Debug("Telemetry processed",
		"regime", regime.String(),
		"speed", telemetry.Speed(),
		"brake_temperature", telemetry.BrakeTemperature(),
		"score", analysis.Score(),
		"level", analysis.Level().String(),
		"root_cause", analysis.RootCause(),
	)

	if alert != nil && alert.Severity().Announceable() {
		uc.logger.Warn("High risk detected",
			"level", analysis.Level().String(),
			"root_cause", analysis.RootCause(),
			"subsystem", analysis.AffectedSubsystem(),
			"alert_id", alert.ID(),
		)
	}

	return &TickResult{
		Telemetry: telemetry,
		Analysis:  analysis,
		Actions:   actions,
		Alert:     alert,
	}
}
