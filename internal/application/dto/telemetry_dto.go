package dto

import (
	"time"

	"github.com/autoguardian/vehicle-safety/internal/domain/entity"
)

// TirePressureDTO holds the four tire readings in PSI.
type TirePressureDTO struct {
	FrontLeft  float64 `json:"front_left"`
	FrontRight float64 `json:"front_right"`
	RearLeft   float64 `json:"rear_left"`
	RearRight  float64 `json:"rear_right"`
}

// TelemetryDTO is the wire form of a TelemetrySnapshot.
type TelemetryDTO struct {
	Speed             float64         `json:"speed"`
	BrakeTemperature  float64         `json:"brake_temperature"`
	TirePressure      TirePressureDTO `json:"tire_pressure"`
	EngineTemperature float64         `json:"engine_temperature"`
	BatteryHealth     float64         `json:"battery_health"`
	FuelLevel         float64         `json:"fuel_level"`
	Timestamp         time.Time       `json:"timestamp"`
}

func FromTelemetry(t *entity.TelemetrySnapshot) TelemetryDTO {
	if t == nil {
		return TelemetryDTO{}
	}
	tires := t.Tires()
	return TelemetryDTO{
		Speed:            t.Speed(),
		BrakeTemperature: t.BrakeTemperature(),
		TirePressure: TirePressureDTO{
			FrontLeft:  tires.FrontLeft(),
			FrontRight: tires.FrontRight(),
			RearLeft:   tires.RearLeft(),
			RearRight:  tires.RearRight(),
		},
		EngineTemperature: t.EngineTemperature(),
		BatteryHealth:     t.BatteryHealth(),
		FuelLevel:         t.FuelLevel(),
		Timestamp:         t.CapturedAt(),
	}
}

// RiskAnalysisDTO is the wire form of a RiskAnalysis.
type RiskAnalysisDTO struct {
	Score             int    `json:"score"`
	Level             string `json:"level"`
	RootCause         string `json:"root_cause"`
	Explanation       string `json:"explanation"`
	AffectedSubsystem string `json:"affected_subsystem"`
}

func FromRiskAnalysis(r *entity.RiskAnalysis) RiskAnalysisDTO {
	if r == nil {
		return RiskAnalysisDTO{}
	}
	return RiskAnalysisDTO{
		Score:             r.Score(),
		Level:             r.Level().String(),
		RootCause:         r.RootCause(),
		Explanation:       r.Explanation(),
		AffectedSubsystem: r.AffectedSubsystem(),
	}
}

// SafetyActionDTO is the wire form of a SafetyAction.
type SafetyActionDTO struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Reasoning   string  `json:"reasoning"`
	Probability float64 `json:"probability"`
	Selected    bool    `json:"selected"`
}

func FromSafetyActions(actions []*entity.SafetyAction) []SafetyActionDTO {
	dtos := make([]SafetyActionDTO, len(actions))
	for i, a := range actions {
		dtos[i] = SafetyActionDTO{
			ID:          a.ID(),
			Name:        a.Name(),
			Description: a.Description(),
			Reasoning:   a.Reasoning(),
			Probability: a.Probability(),
			Selected:    a.Selected(),
		}
	}
	return dtos
}
