package usecase

import (
	"context"
	"testing"

	"github.com/autoguardian/vehicle-safety/internal/application/dto"
	"github.com/autoguardian/vehicle-safety/pkg/logger"
	"github.com/stretchr/testify/assert"
)

func stateWithAlerts(alerts ...dto.AlertDTO) *dto.SimulationStateDTO {
	return &dto.SimulationStateDTO{Alerts: alerts}
}

func TestAnnounceAlertUseCase_SpeaksDangerOnce(t *testing.T) {
	player := &mockPlayer{}
	metrics := &mockMetrics{}
	uc := NewAnnounceAlertUseCase(player, metrics, logger.New("error"))

	state := stateWithAlerts(dto.AlertDTO{ID: "a1", Type: "danger", VoiceMessage: "Warning! slow down"})

	assert.True(t, uc.Execute(context.Background(), state))
	assert.False(t, uc.Execute(context.Background(), state), "same alert must not be spoken twice")
	assert.Equal(t, []string{"Warning! slow down"}, player.spoken)
	assert.Equal(t, 1, metrics.utterances)
	assert.True(t, uc.IsSpeaking())

	uc.Stop()
	assert.False(t, uc.IsSpeaking())
}

func TestAnnounceAlertUseCase_SkipsIneligibleAlerts(t *testing.T) {
	tests := []struct {
		name  string
		state *dto.SimulationStateDTO
	}{
		{name: "nil state", state: nil},
		{name: "no alerts", state: stateWithAlerts()},
		{name: "warning is not spoken", state: stateWithAlerts(dto.AlertDTO{ID: "a1", Type: "warning", VoiceMessage: "Attention driver."})},
		{name: "empty voice message", state: stateWithAlerts(dto.AlertDTO{ID: "a1", Type: "critical"})},
		{name: "all acknowledged", state: stateWithAlerts(dto.AlertDTO{ID: "a1", Type: "critical", VoiceMessage: "Critical alert!", Acknowledged: true})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			player := &mockPlayer{}
			uc := NewAnnounceAlertUseCase(player, nil, logger.New("error"))
			if uc.Execute(context.Background(), tt.state) {
				t.Fatalf("expected no announcement")
			}
			if len(player.spoken) != 0 {
				t.Fatalf("player should not have been called, got %v", player.spoken)
			}
		})
	}
}

func TestAnnounceAlertUseCase_NewestUnacknowledgedWins(t *testing.T) {
	player := &mockPlayer{}
	uc := NewAnnounceAlertUseCase(player, nil, logger.New("error"))

	state := stateWithAlerts(
		dto.AlertDTO{ID: "a3", Type: "critical", VoiceMessage: "third", Acknowledged: true},
		dto.AlertDTO{ID: "a2", Type: "critical", VoiceMessage: "second"},
		dto.AlertDTO{ID: "a1", Type: "danger", VoiceMessage: "first"},
	)

	assert.True(t, uc.Execute(context.Background(), state))
	assert.Equal(t, []string{"second"}, player.spoken)
}

func TestAnnounceAlertUseCase_SwallowsPlaybackErrors(t *testing.T) {
	player := &mockPlayer{err: errBoom}
	metrics := &mockMetrics{}
	uc := NewAnnounceAlertUseCase(player, metrics, logger.New("error"))

	state := stateWithAlerts(dto.AlertDTO{ID: "a1", Type: "critical", VoiceMessage: "Critical alert!"})

	assert.False(t, uc.Execute(context.Background(), state))
	assert.False(t, uc.IsSpeaking())
	assert.Equal(t, 0, metrics.utterances)
}
