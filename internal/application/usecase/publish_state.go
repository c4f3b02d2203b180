package usecase

import (
	"context"
	"time"

	"github.com/autoguardian/vehicle-safety/internal/application/dto"
	"github.com/autoguardian/vehicle-safety/internal/application/port"
	"github.com/autoguardian/vehicle-safety/pkg/logger"
)

// PublishStateUseCase fans a freshly published state out to observers:
// websocket clients, the alert broker, metrics and the voice announcer.
// Observer failures are logged and never returned.
type PublishStateUseCase struct {
	notifier      port.NotificationService
	publisher     port.EventPublisher
	subjectPrefix string
	metrics       port.PipelineMetrics
	announcer     *AnnounceAlertUseCase
	logger        *logger.Logger
	now           func() time.Time
}

// PublishStateConfig carries the optional collaborators; nil fields are skipped.
type PublishStateConfig struct {
	Publisher     port.EventPublisher
	SubjectPrefix string
	Metrics       port.PipelineMetrics
	Announcer     *AnnounceAlertUseCase
	Now           func() time.Time
}

func NewPublishStateUseCase(notifier port.NotificationService, cfg PublishStateConfig, logger *logger.Logger) *PublishStateUseCase {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &PublishStateUseCase{
		notifier:      notifier,
		publisher:     cfg.Publisher,
		subjectPrefix: cfg.SubjectPrefix,
		metrics:       cfg.Metrics,
		announcer:     cfg.Announcer,
		logger:        logger,
		now:           now,
	}
}

// Publish is called by the controller after every tick or command. alert is
// non-nil only for the tick that raised it.
func (uc *PublishStateUseCase) Publish(ctx context.Context, state *dto.SimulationStateDTO, alert *dto.AlertDTO) {
	if state == nil {
		return
	}

	// 1. Push state to websocket clients
	if uc.notifier != nil {
		uc.notifier.Broadcast(state)
		if alert != nil {
			uc.notifier.BroadcastAlert(alert)
		}
	}

	// 2. Emit the new alert downstream
	if alert != nil && uc.publisher != nil {
		event := dto.AlertEvent{
			Alert:             *alert,
			RiskScore:         state.Risk.Score,
			RiskLevel:         state.Risk.Level,
			RootCause:         state.Risk.RootCause,
			AffectedSubsystem: state.Risk.AffectedSubsystem,
			Regime:            state.Regime,
			EmittedAt:         uc.now(),
		}
		subject := port.AlertSubject(uc.subjectPrefix, alert.Type)
		if err := uc.publisher.PublishEvent(ctx, subject, event); err != nil {
			uc.logger.Error("Failed to publish alert event", err, "alert_id", alert.ID, "subject", subject)
			if uc.metrics != nil {
				uc.metrics.ObservePublishFailure()
			}
		}
	}

	// 3. Metrics
	if uc.metrics != nil {
		uc.metrics.SetAlertHistorySize(len(state.Alerts))
		if alert != nil {
			uc.metrics.ObserveAlert(alert.Type)
		}
	}

	// 4. Voice
	if uc.announcer != nil {
		uc.announcer.Execute(ctx, state)
	}
}
