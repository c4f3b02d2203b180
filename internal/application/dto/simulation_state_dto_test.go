package dto

import "testing"

func TestSimulationStateDTO_CloneIsDeep(t *testing.T) {
	original := &SimulationStateDTO{
		Actions:        []SafetyActionDTO{{ID: "1", Selected: true}},
		SelectedAction: &SafetyActionDTO{ID: "1"},
		Alerts:         []AlertDTO{{ID: "a1"}},
	}

	copied := original.Clone()
	copied.Actions[0].Selected = false
	copied.Alerts[0].Acknowledged = true
	copied.SelectedAction.ID = "2"

	if !original.Actions[0].Selected {
		t.Fatalf("clone shares the actions slice")
	}
	if original.Alerts[0].Acknowledged {
		t.Fatalf("clone shares the alerts slice")
	}
	if original.SelectedAction.ID != "1" {
		t.Fatalf("clone shares the selected action")
	}
}

func TestSimulationStateDTO_LatestUnacknowledged(t *testing.T) {
	state := &SimulationStateDTO{Alerts: []AlertDTO{
		{ID: "a3", Acknowledged: true},
		{ID: "a2"},
		{ID: "a1"},
	}}

	latest := state.LatestUnacknowledged()
	if latest == nil || latest.ID != "a2" {
		t.Fatalf("expected a2, got %v", latest)
	}

	empty := &SimulationStateDTO{}
	if empty.LatestUnacknowledged() != nil {
		t.Fatalf("expected nil for empty history")
	}
}
