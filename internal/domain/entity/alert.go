package entity

import (
	"time"

	"github.com/autoguardian/vehicle-safety/internal/domain/valueobject"
)

// Alert is a driver-facing notification with identity. Only the
// acknowledged flag is mutable and it never reverts.
type Alert struct {
	id           string
	severity     valueobject.AlertSeverity
	title        string
	message      string
	voiceMessage string
	createdAt    time.Time
	acknowledged bool
}

func NewAlert(
	id string,
	severity valueobject.AlertSeverity,
	title string,
	message string,
	voiceMessage string,
	createdAt time.Time,
) *Alert {
	return &Alert{
		id:           id,
		severity:     severity,
		title:        title,
		message:      message,
		voiceMessage: voiceMessage,
		createdAt:    createdAt,
	}
}

func (a *Alert) ID() string {
	return a.id
}

func (a *Alert) Severity() valueobject.AlertSeverity {
	return a.severity
}

func (a *Alert) Title() string {
	return a.title
}

func (a *Alert) Message() string {
	return a.message
}

func (a *Alert) VoiceMessage() string {
	return a.voiceMessage
}

func (a *Alert) CreatedAt() time.Time {
	return a.createdAt
}

func (a *Alert) Acknowledged() bool {
	return a.acknowledged
}

// Acknowledge marks the alert as seen by the driver.
func (a *Alert) Acknowledge() {
	a.acknowledged = true
}

// Clone returns an independent copy.
func (a *Alert) Clone() *Alert {
	copied := *a
	return &copied
}
