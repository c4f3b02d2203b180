package entity

import (
	"time"

	"github.com/autoguardian/vehicle-safety/internal/domain/valueobject"
)

// TelemetrySnapshot is one immutable set of vehicle sensor readings.
// It is superseded, never merged, by the next snapshot.
type TelemetrySnapshot struct {
	speed             float64
	brakeTemperature  float64
	tires             valueobject.TirePressure
	engineTemperature float64
	batteryHealth     float64
	fuelLevel         float64
	capturedAt        time.Time
}

// NewTelemetrySnapshot builds a snapshot (Factory Method).
func NewTelemetrySnapshot(
	speed float64,
	brakeTemperature float64,
	tires valueobject.TirePressure,
	engineTemperature float64,
	batteryHealth float64,
	fuelLevel float64,
	capturedAt time.Time,
) *TelemetrySnapshot {
	return &TelemetrySnapshot{
		speed:             speed,
		brakeTemperature:  brakeTemperature,
		tires:             tires,
		engineTemperature: engineTemperature,
		batteryHealth:     batteryHealth,
		fuelLevel:         fuelLevel,
		capturedAt:        capturedAt,
	}
}

// Speed in km/h.
func (t *TelemetrySnapshot) Speed() float64 {
	return t.speed
}

// BrakeTemperature in degrees Celsius.
func (t *TelemetrySnapshot) BrakeTemperature() float64 {
	return t.brakeTemperature
}

func (t *TelemetrySnapshot) Tires() valueobject.TirePressure {
	return t.tires
}

// EngineTemperature in degrees Celsius.
func (t *TelemetrySnapshot) EngineTemperature() float64 {
	return t.engineTemperature
}

// BatteryHealth in percent.
func (t *TelemetrySnapshot) BatteryHealth() float64 {
	return t.batteryHealth
}

// FuelLevel in percent.
func (t *TelemetrySnapshot) FuelLevel() float64 {
	return t.fuelLevel
}

func (t *TelemetrySnapshot) CapturedAt() time.Time {
	return t.capturedAt
}
