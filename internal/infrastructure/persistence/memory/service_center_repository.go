package memory

import (
	"context"
	"sync"

	"github.com/autoguardian/vehicle-safety/internal/domain/entity"
	"github.com/autoguardian/vehicle-safety/internal/domain/repository"
)

// ServiceCenterRepository implements repository.ServiceCenterRepository in memory.
type ServiceCenterRepository struct {
	mu       sync.RWMutex
	centers  []*entity.ServiceCenter
	bookedID string
}

func NewServiceCenterRepository(centers []*entity.ServiceCenter) *ServiceCenterRepository {
	owned := make([]*entity.ServiceCenter, 0, len(centers))
	for _, c := range centers {
		owned = append(owned, c.Clone())
	}
	return &ServiceCenterRepository{centers: owned}
}

// NewDefaultServiceCenterRepository is seeded with DefaultServiceCenters.
func NewDefaultServiceCenterRepository() *ServiceCenterRepository {
	return NewServiceCenterRepository(DefaultServiceCenters())
}

func (r *ServiceCenterRepository) List(ctx context.Context) ([]*entity.ServiceCenter, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*entity.ServiceCenter, 0, len(r.centers))
	for _, c := range r.centers {
		result = append(result, c.Clone())
	}
	return result, nil
}

// Book keeps earlier bookings flagged; BookedID follows the latest one.
func (r *ServiceCenterRepository) Book(ctx context.Context, id string) (*entity.ServiceCenter, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range r.centers {
		if c.ID() != id {
			continue
		}
		if !c.Book() {
			return nil, repository.ErrServiceCenterUnavailable
		}
		r.bookedID = id
		return c.Clone(), nil
	}
	return nil, repository.ErrServiceCenterNotFound
}

func (r *ServiceCenterRepository) BookedID(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.bookedID, nil
}
