package port

import (
	"github.com/autoguardian/vehicle-safety/internal/domain/entity"
	"github.com/autoguardian/vehicle-safety/internal/domain/valueobject"
)

// TelemetrySource produces a fresh sensor snapshot for the given regime.
// Implementations never fail; the generator lives in the Infrastructure layer.
type TelemetrySource interface {
	Generate(regime valueobject.Regime) *entity.TelemetrySnapshot
}
