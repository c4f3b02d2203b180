package valueobject

import "errors"

// AlertSeverity is the presentation tier of an alert.
type AlertSeverity string

const (
	SeverityInfo     AlertSeverity = "info"
	SeverityWarning  AlertSeverity = "warning"
	SeverityDanger   AlertSeverity = "danger"
	SeverityCritical AlertSeverity = "critical"
)

// SeverityForLevel maps risk levels 1:1 onto alert tiers.
func SeverityForLevel(level RiskLevel) AlertSeverity {
	switch level {
	case RiskMedium:
		return SeverityWarning
	case RiskHigh:
		return SeverityDanger
	case RiskCritical:
		return SeverityCritical
	default:
		return SeverityInfo
	}
}

func (s AlertSeverity) Validate() error {
	switch s {
	case SeverityInfo, SeverityWarning, SeverityDanger, SeverityCritical:
		return nil
	default:
		return errors.New("invalid alert severity")
	}
}

// Announceable reports whether alerts of this tier are spoken to the driver.
func (s AlertSeverity) Announceable() bool {
	return s == SeverityDanger || s == SeverityCritical
}

func (s AlertSeverity) String() string {
	return string(s)
}
