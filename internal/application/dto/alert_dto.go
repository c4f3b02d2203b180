package dto

import (
	"time"

	"github.com/autoguardian/vehicle-safety/internal/domain/entity"
)

// AlertDTO is sent to clients and to the broker.
type AlertDTO struct {
	ID           string    `json:"id"`
	Type         string    `json:"type"` // info, warning, danger, critical
	Title        string    `json:"title"`
	Message      string    `json:"message"`
	VoiceMessage string    `json:"voice_message"`
	Timestamp    time.Time `json:"timestamp"`
	Acknowledged bool      `json:"acknowledged"`
}

func FromAlert(a *entity.Alert) AlertDTO {
	return AlertDTO{
		ID:           a.ID(),
		Type:         a.Severity().String(),
		Title:        a.Title(),
		Message:      a.Message(),
		VoiceMessage: a.VoiceMessage(),
		Timestamp:    a.CreatedAt(),
		Acknowledged: a.Acknowledged(),
	}
}

func FromAlerts(alerts []*entity.Alert) []AlertDTO {
	dtos := make([]AlertDTO, len(alerts))
	for i, a := range alerts {
		dtos[i] = FromAlert(a)
	}
	return dtos
}

// AlertEvent is the payload published for every new alert.
type AlertEvent struct {
	Alert             AlertDTO  `json:"alert"`
	RiskScore         int       `json:"risk_score"`
	RiskLevel         string    `json:"risk_level"`
	RootCause         string    `json:"root_cause"`
	AffectedSubsystem string    `json:"affected_subsystem"`
	Regime            string    `json:"regime"`
	EmittedAt         time.Time `json:"emitted_at"`
}
