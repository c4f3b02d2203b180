package repository

import (
	"context"
	"errors"

	"github.com/autoguardian/vehicle-safety/internal/domain/entity"
)

var (
	ErrServiceCenterNotFound    = errors.New("service center not found")
	ErrServiceCenterUnavailable = errors.New("service center unavailable")
)

// ServiceCenterRepository stores roadside service centers and the current
// booking (Repository Pattern).
type ServiceCenterRepository interface {
	// List returns all centers in display order.
	List(ctx context.Context) ([]*entity.ServiceCenter, error)

	// Book marks a center as booked and remembers it as the active booking.
	// Returns ErrServiceCenterNotFound or ErrServiceCenterUnavailable.
	Book(ctx context.Context, id string) (*entity.ServiceCenter, error)

	// BookedID returns the id of the active booking, or "".
	BookedID(ctx context.Context) (string, error)
}

// InsightRepository provides read-only manufacturer statistics.
type InsightRepository interface {
	ManufacturerInsights(ctx context.Context) ([]entity.ManufacturerInsight, error)
	Agents(ctx context.Context) ([]entity.AgentProfile, error)
}
