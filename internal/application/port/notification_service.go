package port

import "github.com/autoguardian/vehicle-safety/internal/application/dto"

// NotificationService pushes state to connected observers (Port).
// Implemented by the WebSocket hub. Calls must not block.
type NotificationService interface {
	// Broadcast sends a state snapshot to every client
	Broadcast(state *dto.SimulationStateDTO)

	// BroadcastAlert sends a newly raised alert to every client
	BroadcastAlert(alert *dto.AlertDTO)

	// ClientCount returns the number of connected clients
	ClientCount() int
}
