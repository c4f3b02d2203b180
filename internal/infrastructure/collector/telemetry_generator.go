package collector

import (
	"math/rand/v2"
	"sync"

	"github.com/autoguardian/vehicle-safety/internal/domain/entity"
	"github.com/autoguardian/vehicle-safety/internal/domain/valueobject"
	"github.com/zoobzio/clockz"
)

// RandomSource yields uniform values in [0, 1).
type RandomSource interface {
	Float64() float64
}

// Band is the uniform range low + r*width a signal is drawn from.
type Band struct {
	Low   float64
	Width float64
}

func (b Band) sample(r float64) float64 {
	return b.Low + r*b.Width
}

// RegimeBands holds one band per telemetry signal.
type RegimeBands struct {
	Speed             Band
	BrakeTemperature  Band
	TireFrontLeft     Band
	TireFrontRight    Band
	TireRearLeft      Band
	TireRearRight     Band
	EngineTemperature Band
	BatteryHealth     Band
	FuelLevel         Band
}

var (
	NormalBands = RegimeBands{
		Speed:             Band{Low: 60, Width: 40},
		BrakeTemperature:  Band{Low: 80, Width: 50},
		TireFrontLeft:     Band{Low: 32, Width: 4},
		TireFrontRight:    Band{Low: 32, Width: 4},
		TireRearLeft:      Band{Low: 32, Width: 4},
		TireRearRight:     Band{Low: 32, Width: 4},
		EngineTemperature: Band{Low: 85, Width: 20},
		BatteryHealth:     Band{Low: 85, Width: 15},
		FuelLevel:         Band{Low: 40, Width: 50},
	}

	// ElevatedBands drive every rule of the risk scorer at least part of the time.
	ElevatedBands = RegimeBands{
		Speed:             Band{Low: 120, Width: 40},
		BrakeTemperature:  Band{Low: 180, Width: 80},
		TireFrontLeft:     Band{Low: 22, Width: 8},
		TireFrontRight:    Band{Low: 32, Width: 4},
		TireRearLeft:      Band{Low: 32, Width: 4},
		TireRearRight:     Band{Low: 18, Width: 6},
		EngineTemperature: Band{Low: 105, Width: 25},
		BatteryHealth:     Band{Low: 30, Width: 40},
		FuelLevel:         Band{Low: 10, Width: 20},
	}
)

// TelemetryGenerator produces synthetic vehicle readings.
// Implements port.TelemetrySource.
type TelemetryGenerator struct {
	mu     sync.Mutex
	random RandomSource
	clock  clockz.Clock
}

// NewTelemetryGenerator seeds a PCG source. A zero seed derives one from the clock.
func NewTelemetryGenerator(seed uint64, clock clockz.Clock) *TelemetryGenerator {
	if seed == 0 {
		seed = uint64(clock.Now().UnixNano())
	}
	return NewTelemetryGeneratorWith(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)), clock)
}

func NewTelemetryGeneratorWith(random RandomSource, clock clockz.Clock) *TelemetryGenerator {
	return &TelemetryGenerator{random: random, clock: clock}
}

// Generate draws one snapshot for regime. Unknown regimes use the normal bands.
func (g *TelemetryGenerator) Generate(regime valueobject.Regime) *entity.TelemetrySnapshot {
	bands := NormalBands
	if regime == valueobject.RegimeElevated {
		bands = ElevatedBands
	}

	// rand.Rand is not safe for concurrent use
	g.mu.Lock()
	defer g.mu.Unlock()

	speed := bands.Speed.sample(g.random.Float64())
	brake := bands.BrakeTemperature.sample(g.random.Float64())
	tires := valueobject.NewTirePressure(
		bands.TireFrontLeft.sample(g.random.Float64()),
		bands.TireFrontRight.sample(g.random.Float64()),
		bands.TireRearLeft.sample(g.random.Float64()),
		bands.TireRearRight.sample(g.random.Float64()),
	)
	engine := bands.EngineTemperature.sample(g.random.Float64())
	battery := bands.BatteryHealth.sample(g.random.Float64())
	fuel := bands.FuelLevel.sample(g.random.Float64())

	return entity.NewTelemetrySnapshot(speed, brake, tires, engine, battery, fuel, g.clock.Now())
}
