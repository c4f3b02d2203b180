package valueobject

import "errors"

// RiskLevel is the discrete band derived from a risk score (Value Object).
type RiskLevel string

const (
	RiskLow      RiskLevel = "LOW"
	RiskMedium   RiskLevel = "MEDIUM"
	RiskHigh     RiskLevel = "HIGH"
	RiskCritical RiskLevel = "CRITICAL"
)

// Score thresholds, inclusive on the lower bound.
const (
	CriticalThreshold = 75
	HighThreshold     = 50
	MediumThreshold   = 25
	MaxRiskScore      = 100
)

// LevelForScore maps a score to its level by descending threshold.
func LevelForScore(score int) RiskLevel {
	switch {
	case score >= CriticalThreshold:
		return RiskCritical
	case score >= HighThreshold:
		return RiskHigh
	case score >= MediumThreshold:
		return RiskMedium
	default:
		return RiskLow
	}
}

// ClampScore bounds a raw rule sum to [0, MaxRiskScore].
func ClampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > MaxRiskScore {
		return MaxRiskScore
	}
	return score
}

func (l RiskLevel) Validate() error {
	switch l {
	case RiskLow, RiskMedium, RiskHigh, RiskCritical:
		return nil
	default:
		return errors.New("invalid risk level")
	}
}

// Rank orders levels from 0 (LOW) to 3 (CRITICAL); unknown levels rank -1.
func (l RiskLevel) Rank() int {
	switch l {
	case RiskLow:
		return 0
	case RiskMedium:
		return 1
	case RiskHigh:
		return 2
	case RiskCritical:
		return 3
	default:
		return -1
	}
}

// IsElevated reports HIGH or CRITICAL, the levels that put the vehicle in emergency mode.
func (l RiskLevel) IsElevated() bool {
	return l == RiskHigh || l == RiskCritical
}

func (l RiskLevel) String() string {
	return string(l)
}

// AllRiskLevels returns levels in ascending order.
func AllRiskLevels() []RiskLevel {
	return []RiskLevel{RiskLow, RiskMedium, RiskHigh, RiskCritical}
}
