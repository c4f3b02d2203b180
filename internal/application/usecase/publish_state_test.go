package usecase

import (
	"context"
	"testing"

	"github.com/autoguardian/vehicle-safety/internal/application/dto"
	"github.com/autoguardian/vehicle-safety/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishStateUseCase_FansOutNewAlert(t *testing.T) {
	notifier := &mockNotifier{}
	publisher := &mockPublisher{}
	metrics := &mockMetrics{}
	player := &mockPlayer{}

	uc := NewPublishStateUseCase(notifier, PublishStateConfig{
		Publisher:     publisher,
		SubjectPrefix: "vehicle.alerts",
		Metrics:       metrics,
		Announcer:     NewAnnounceAlertUseCase(player, metrics, logger.New("error")),
		Now:           fixedTime,
	}, logger.New("error"))

	alert := dto.AlertDTO{ID: "a1", Type: "critical", Title: "CRITICAL RISK: Excessive Speed", VoiceMessage: "Critical alert!"}
	state := &dto.SimulationStateDTO{
		Regime: "elevated",
		Risk:   dto.RiskAnalysisDTO{Score: 100, Level: "CRITICAL", RootCause: "Excessive Speed", AffectedSubsystem: "Speedometer"},
		Alerts: []dto.AlertDTO{alert},
	}

	uc.Publish(context.Background(), state, &alert)

	require.Len(t, notifier.states, 1)
	require.Len(t, notifier.alerts, 1)
	require.Len(t, publisher.events, 1)
	assert.Equal(t, "vehicle.alerts.critical", publisher.events[0].subject)

	event, ok := publisher.events[0].event.(dto.AlertEvent)
	require.True(t, ok)
	assert.Equal(t, "a1", event.Alert.ID)
	assert.Equal(t, 100, event.RiskScore)
	assert.Equal(t, "elevated", event.Regime)
	assert.Equal(t, fixedTime(), event.EmittedAt)

	assert.Equal(t, []string{"critical"}, metrics.alerts)
	assert.Equal(t, 1, metrics.historySize)
	assert.Equal(t, []string{"Critical alert!"}, player.spoken)
}

func TestPublishStateUseCase_StateOnly(t *testing.T) {
	notifier := &mockNotifier{}
	publisher := &mockPublisher{}

	uc := NewPublishStateUseCase(notifier, PublishStateConfig{Publisher: publisher}, logger.New("error"))
	uc.Publish(context.Background(), &dto.SimulationStateDTO{}, nil)
	uc.Publish(context.Background(), nil, nil)

	assert.Len(t, notifier.states, 1)
	assert.Empty(t, notifier.alerts)
	assert.Empty(t, publisher.events)
}

func TestPublishStateUseCase_PublishFailureIsSwallowed(t *testing.T) {
	notifier := &mockNotifier{}
	publisher := &mockPublisher{err: errBoom}
	metrics := &mockMetrics{}

	uc := NewPublishStateUseCase(notifier, PublishStateConfig{Publisher: publisher, Metrics: metrics}, logger.New("error"))

	alert := dto.AlertDTO{ID: "a1", Type: "warning"}
	uc.Publish(context.Background(), &dto.SimulationStateDTO{Alerts: []dto.AlertDTO{alert}}, &alert)

	assert.Equal(t, 1, metrics.publishFailures)
	assert.Len(t, notifier.alerts, 1)
}
