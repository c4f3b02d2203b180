package dto

import "time"

// SimulationStateDTO is an immutable view of the controller state handed to
// readers and observers. Version increases with every published change.
type SimulationStateDTO struct {
	Version         uint64            `json:"version"`
	TickCount       uint64            `json:"tick_count"`
	Running         bool              `json:"running"`
	Regime          string            `json:"regime"`
	HighRiskMode    bool              `json:"high_risk_mode"`
	Telemetry       TelemetryDTO      `json:"telemetry"`
	Risk            RiskAnalysisDTO   `json:"risk"`
	Actions         []SafetyActionDTO `json:"actions"`
	SelectedAction  *SafetyActionDTO  `json:"selected_action,omitempty"`
	OptimizerActive bool              `json:"optimizer_active"`
	Alerts          []AlertDTO        `json:"alerts"`
	StartedAt       time.Time         `json:"started_at"`
	LastTickAt      time.Time         `json:"last_tick_at"`
	TickIntervalMs  int64             `json:"tick_interval_ms"`
}

// Clone returns a deep copy.
func (s *SimulationStateDTO) Clone() *SimulationStateDTO {
	if s == nil {
		return nil
	}
	copied := *s
	copied.Actions = make([]SafetyActionDTO, len(s.Actions))
	copy(copied.Actions, s.Actions)
	copied.Alerts = make([]AlertDTO, len(s.Alerts))
	copy(copied.Alerts, s.Alerts)
	if s.SelectedAction != nil {
		selected := *s.SelectedAction
		copied.SelectedAction = &selected
	}
	return &copied
}

// LatestUnacknowledged returns the newest alert not yet acknowledged.
func (s *SimulationStateDTO) LatestUnacknowledged() *AlertDTO {
	for i := range s.Alerts {
		if !s.Alerts[i].Acknowledged {
			alert := s.Alerts[i]
			return &alert
		}
	}
	return nil
}
