package entity

import "github.com/autoguardian/vehicle-safety/internal/domain/valueobject"

// RiskAnalysis is derived from exactly one TelemetrySnapshot.
type RiskAnalysis struct {
	score             int
	level             valueobject.RiskLevel
	rootCause         string
	explanation       string
	affectedSubsystem string
}

// NewRiskAnalysis clamps score and derives the level from it, so level
// always agrees with score.
func NewRiskAnalysis(score int, rootCause, explanation, affectedSubsystem string) *RiskAnalysis {
	score = valueobject.ClampScore(score)
	return &RiskAnalysis{
		score:             score,
		level:             valueobject.LevelForScore(score),
		rootCause:         rootCause,
		explanation:       explanation,
		affectedSubsystem: affectedSubsystem,
	}
}

func (r *RiskAnalysis) Score() int {
	return r.score
}

func (r *RiskAnalysis) Level() valueobject.RiskLevel {
	return r.level
}

func (r *RiskAnalysis) RootCause() string {
	return r.rootCause
}

func (r *RiskAnalysis) Explanation() string {
	return r.explanation
}

func (r *RiskAnalysis) AffectedSubsystem() string {
	return r.affectedSubsystem
}
