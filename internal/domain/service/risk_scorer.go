package service

import (
	"github.com/autoguardian/vehicle-safety/internal/domain/entity"
)

// RiskFinding is the label a firing tier reports as the analysis root cause.
type RiskFinding struct {
	RootCause         string
	Explanation       string
	AffectedSubsystem string
}

// RiskTier contributes Points when Match holds. Finding is nil for tiers
// that add points without naming a root cause.
type RiskTier struct {
	Points  int
	Finding *RiskFinding
	Match   func(t *entity.TelemetrySnapshot) bool
}

// RiskRule groups the tiers of one signal, most severe first. At most one
// tier of a rule fires.
type RiskRule struct {
	Signal string
	Tiers  []RiskTier
}

var NormalOperation = RiskFinding{
	RootCause:         "Normal Operation",
	Explanation:       "All systems operating within normal parameters",
	AffectedSubsystem: "None",
}

// DefaultRiskRules is the fixed evaluation order used for scoring.
var DefaultRiskRules = []RiskRule{
	{
		Signal: "speed",
		Tiers: []RiskTier{
			{
				Points: 35,
				Finding: &RiskFinding{
					RootCause:         "Excessive Speed",
					Explanation:       "Vehicle speed exceeds safe limits for current conditions",
					AffectedSubsystem: "Speedometer",
				},
				Match: func(t *entity.TelemetrySnapshot) bool { return t.Speed() > 140 },
			},
			{
				Points: 20,
				Match:  func(t *entity.TelemetrySnapshot) bool { return t.Speed() > 120 },
			},
		},
	},
	{
		Signal: "brake_temperature",
		Tiers: []RiskTier{
			{
				Points: 40,
				Finding: &RiskFinding{
					RootCause:         "Brake System Overheating",
					Explanation:       "Brake temperature critically high - risk of brake fade and failure",
					AffectedSubsystem: "Brake System",
				},
				Match: func(t *entity.TelemetrySnapshot) bool { return t.BrakeTemperature() > 220 },
			},
			{
				Points: 25,
				Finding: &RiskFinding{
					RootCause:         "Elevated Brake Temperature",
					Explanation:       "Brake temperature above optimal range",
					AffectedSubsystem: "Brake System",
				},
				Match: func(t *entity.TelemetrySnapshot) bool { return t.BrakeTemperature() > 180 },
			},
		},
	},
	{
		Signal: "tire_pressure",
		Tiers: []RiskTier{
			{
				Points: 35,
				Finding: &RiskFinding{
					RootCause:         "Critical Tire Pressure",
					Explanation:       "Dangerously low tire pressure detected - immediate attention required",
					AffectedSubsystem: "Tire System",
				},
				Match: func(t *entity.TelemetrySnapshot) bool { return t.Tires().AnyBelow(20) },
			},
			{
				Points: 15,
				Finding: &RiskFinding{
					RootCause:         "Low Tire Pressure",
					Explanation:       "One or more tires below recommended pressure",
					AffectedSubsystem: "Tire System",
				},
				Match: func(t *entity.TelemetrySnapshot) bool { return t.Tires().AnyBelow(25) },
			},
		},
	},
	{
		Signal: "engine_temperature",
		Tiers: []RiskTier{
			{
				Points: 30,
				Finding: &RiskFinding{
					RootCause:         "Engine Overheating",
					Explanation:       "Engine temperature exceeds safe operating range",
					AffectedSubsystem: "Engine",
				},
				Match: func(t *entity.TelemetrySnapshot) bool { return t.EngineTemperature() > 120 },
			},
		},
	},
	{
		Signal: "battery_health",
		Tiers: []RiskTier{
			{
				Points: 20,
				Finding: &RiskFinding{
					RootCause:         "Low Battery Health",
					Explanation:       "Battery degradation may affect vehicle systems",
					AffectedSubsystem: "Battery",
				},
				Match: func(t *entity.TelemetrySnapshot) bool { return t.BatteryHealth() < 30 },
			},
		},
	},
}

// RiskScorer turns a telemetry snapshot into a RiskAnalysis (Domain Service).
//
// Every firing tier adds its points. The first firing tier with a finding,
// in rule order, names the root cause; later findings never overwrite it.
type RiskScorer struct {
	rules []RiskRule
}

func NewRiskScorer() *RiskScorer {
	return &RiskScorer{rules: DefaultRiskRules}
}

// NewRiskScorerWithRules is used by tests and alternative rule sets.
func NewRiskScorerWithRules(rules []RiskRule) *RiskScorer {
	return &RiskScorer{rules: rules}
}

func (s *RiskScorer) Score(snapshot *entity.TelemetrySnapshot) *entity.RiskAnalysis {
	if snapshot == nil {
		return entity.NewRiskAnalysis(0, NormalOperation.RootCause, NormalOperation.Explanation, NormalOperation.AffectedSubsystem)
	}

	total := 0
	var finding *RiskFinding

	for _, rule := range s.rules {
		for _, tier := range rule.Tiers {
			if !tier.Match(snapshot) {
				continue
			}
			total += tier.Points
			if finding == nil && tier.Finding != nil {
				finding = tier.Finding
			}
			break
		}
	}

	if finding == nil {
		finding = &NormalOperation
	}

	return entity.NewRiskAnalysis(total, finding.RootCause, finding.Explanation, finding.AffectedSubsystem)
}
