package usecase

import (
	"context"
	"sync"

	"github.com/autoguardian/vehicle-safety/internal/application/dto"
	"github.com/autoguardian/vehicle-safety/internal/application/port"
	"github.com/autoguardian/vehicle-safety/internal/domain/valueobject"
	"github.com/autoguardian/vehicle-safety/pkg/logger"
)

// AnnounceAlertUseCase decides whether the newest alert is spoken to the
// driver. Each alert id is spoken at most once, and only danger or critical
// alerts with a voice message qualify.
type AnnounceAlertUseCase struct {
	player  port.VoicePlayer
	metrics port.PipelineMetrics
	logger  *logger.Logger

	mu           sync.Mutex
	lastSpokenID string
}

// NewAnnounceAlertUseCase accepts a nil metrics recorder.
func NewAnnounceAlertUseCase(player port.VoicePlayer, metrics port.PipelineMetrics, logger *logger.Logger) *AnnounceAlertUseCase {
	return &AnnounceAlertUseCase{
		player:  player,
		metrics: metrics,
		logger:  logger,
	}
}

// Execute reports whether an utterance was started. Playback errors are
// logged and swallowed.
func (uc *AnnounceAlertUseCase) Execute(ctx context.Context, state *dto.SimulationStateDTO) bool {
	if state == nil {
		return false
	}

	latest := state.LatestUnacknowledged()
	if latest == nil || latest.VoiceMessage == "" {
		return false
	}
	if !valueobject.AlertSeverity(latest.Type).Announceable() {
		return false
	}

	uc.mu.Lock()
	if latest.ID == uc.lastSpokenID {
		uc.mu.Unlock()
		return false
	}
	uc.lastSpokenID = latest.ID
	uc.mu.Unlock()

	if err := uc.player.Speak(ctx, latest.VoiceMessage); err != nil {
		uc.logger.Warn("Voice playback failed", "alert_id", latest.ID, "error", err.Error())
		return false
	}

	if uc.metrics != nil {
		uc.metrics.ObserveUtterance()
	}
	uc.logger.Info("Voice alert announced", "alert_id", latest.ID, "type", latest.Type)

	return true
}

// Stop cancels any utterance in progress.
func (uc *AnnounceAlertUseCase) Stop() {
	uc.player.Stop()
}

// IsSpeaking reports the player status.
func (uc *AnnounceAlertUseCase) IsSpeaking() bool {
	return uc.player.IsSpeaking()
}
