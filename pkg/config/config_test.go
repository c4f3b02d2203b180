package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 2500*time.Millisecond, cfg.Simulation.TickInterval)
	assert.Equal(t, 10, cfg.Simulation.HistoryCapacity)
	assert.True(t, cfg.Simulation.StartRunning)
	assert.False(t, cfg.Simulation.StartElevated)
	assert.False(t, cfg.NATS.Enabled)
	assert.Equal(t, "vehicle.alerts", cfg.NATS.SubjectPrefix)
	assert.InDelta(t, 0.9, cfg.Voice.Rate, 1e-9)
	assert.Equal(t, []string{"http://localhost:8080", "http://127.0.0.1:8080"}, cfg.Security.AllowedOrigins)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SIMULATION_TICK_INTERVAL", "1s")
	t.Setenv("SIMULATION_HISTORY_CAPACITY", "3")
	t.Setenv("SIMULATION_ELEVATED_REGIME", "true")
	t.Setenv("NATS_SUBJECT_PREFIX", "fleet.alerts.")
	t.Setenv("ALLOWED_ORIGINS", " https://a.example , ,https://b.example")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, time.Second, cfg.Simulation.TickInterval)
	assert.Equal(t, 3, cfg.Simulation.HistoryCapacity)
	assert.True(t, cfg.Simulation.StartElevated)
	assert.Equal(t, "fleet.alerts", cfg.NATS.SubjectPrefix)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Security.AllowedOrigins)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "unparsable interval", key: "SIMULATION_TICK_INTERVAL", value: "soon"},
		{name: "interval too short", key: "SIMULATION_TICK_INTERVAL", value: "10ms"},
		{name: "zero capacity", key: "SIMULATION_HISTORY_CAPACITY", value: "0"},
		{name: "bad capacity", key: "SIMULATION_HISTORY_CAPACITY", value: "ten"},
		{name: "bad seed", key: "SIMULATION_SEED", value: "-1"},
		{name: "non positive voice rate", key: "VOICE_RATE", value: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %s=%q", tt.key, tt.value)
			}
		})
	}
}
