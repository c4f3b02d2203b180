package port

import "github.com/autoguardian/vehicle-safety/internal/application/dto"

// StateReader exposes the latest published simulation state.
type StateReader interface {
	Snapshot() *dto.SimulationStateDTO
}
