package usecase

import (
	"context"
	"fmt"

	"github.com/autoguardian/vehicle-safety/internal/application/dto"
	"github.com/autoguardian/vehicle-safety/internal/application/port"
	"github.com/autoguardian/vehicle-safety/internal/domain/repository"
	"github.com/autoguardian/vehicle-safety/internal/domain/valueobject"
	"github.com/autoguardian/vehicle-safety/pkg/logger"
)

// GetEmergencyOverviewUseCase lists service centers together with the
// current emergency status.
type GetEmergencyOverviewUseCase struct {
	centers repository.ServiceCenterRepository
	state   port.StateReader
	logger  *logger.Logger
}

func NewGetEmergencyOverviewUseCase(
	centers repository.ServiceCenterRepository,
	state port.StateReader,
	logger *logger.Logger,
) *GetEmergencyOverviewUseCase {
	return &GetEmergencyOverviewUseCase{
		centers: centers,
		state:   state,
		logger:  logger,
	}
}

func (uc *GetEmergencyOverviewUseCase) Execute(ctx context.Context) (*dto.EmergencyOverviewDTO, error) {
	centers, err := uc.centers.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list service centers: %w", err)
	}

	bookedID, err := uc.centers.BookedID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read booking: %w", err)
	}

	overview := &dto.EmergencyOverviewDTO{
		BookedCenterID: bookedID,
		ServiceCenters: make([]dto.ServiceCenterDTO, 0, len(centers)),
	}
	for _, c := range centers {
		overview.ServiceCenters = append(overview.ServiceCenters, dto.FromServiceCenter(c))
	}

	if state := uc.state.Snapshot(); state != nil {
		level := valueobject.RiskLevel(state.Risk.Level)
		overview.RiskLevel = level.String()
		overview.RootCause = state.Risk.RootCause
		overview.EmergencyActive = level.IsElevated()
	}

	return overview, nil
}

// BookServiceCenterUseCase books roadside assistance at one center.
type BookServiceCenterUseCase struct {
	centers repository.ServiceCenterRepository
	logger  *logger.Logger
}

func NewBookServiceCenterUseCase(centers repository.ServiceCenterRepository, logger *logger.Logger) *BookServiceCenterUseCase {
	return &BookServiceCenterUseCase{centers: centers, logger: logger}
}

// Execute returns repository.ErrServiceCenterNotFound or
// repository.ErrServiceCenterUnavailable wrapped.
func (uc *BookServiceCenterUseCase) Execute(ctx context.Context, id string) (*dto.ServiceCenterDTO, error) {
	center, err := uc.centers.Book(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("book service center %q: %w", id, err)
	}

	uc.logger.Info("Service center booked", "id", center.ID(), "name", center.Name(), "eta", center.EstimatedArrival())

	result := dto.FromServiceCenter(center)
	return &result, nil
}
