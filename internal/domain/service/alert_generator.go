package service

import (
	"fmt"
	"time"

	"github.com/autoguardian/vehicle-safety/internal/domain/entity"
	"github.com/autoguardian/vehicle-safety/internal/domain/valueobject"
	"github.com/google/uuid"
)

// AlertGenerator builds driver alerts from risk analyses (Domain Service).
type AlertGenerator struct {
	newID func() string
	now   func() time.Time
}

// NewAlertGenerator uses UUIDv4 ids and the wall clock.
func NewAlertGenerator() *AlertGenerator {
	return NewAlertGeneratorWith(uuid.NewString, time.Now)
}

// NewAlertGeneratorWith injects the id and time sources.
func NewAlertGeneratorWith(newID func() string, now func() time.Time) *AlertGenerator {
	if newID == nil {
		newID = uuid.NewString
	}
	if now == nil {
		now = time.Now
	}
	return &AlertGenerator{newID: newID, now: now}
}

// MaybeGenerate returns nil for LOW analyses.
func (g *AlertGenerator) MaybeGenerate(analysis *entity.RiskAnalysis) *entity.Alert {
	if analysis == nil || analysis.Level() == valueobject.RiskLow {
		return nil
	}

	return entity.NewAlert(
		g.newID(),
		valueobject.SeverityForLevel(analysis.Level()),
		fmt.Sprintf("%s RISK: %s", analysis.Level(), analysis.RootCause()),
		analysis.Explanation(),
		VoiceMessage(analysis),
		g.now(),
	)
}

// VoiceMessage is the spoken text for an analysis; empty for LOW.
func VoiceMessage(analysis *entity.RiskAnalysis) string {
	rootCause := analysis.RootCause()
	explanation := analysis.Explanation()

	switch analysis.Level() {
	case valueobject.RiskMedium:
		return fmt.Sprintf("Attention driver. %s detected. Please monitor your vehicle systems.", rootCause)
	case valueobject.RiskHigh:
		return fmt.Sprintf("Warning! %s detected. %s. Please reduce speed and prepare to pull over safely.", rootCause, explanation)
	case valueobject.RiskCritical:
		return fmt.Sprintf("Critical alert! %s. %s. Please reduce speed immediately and pull over to a safe location. Emergency assistance may be required.", rootCause, explanation)
	default:
		return ""
	}
}
