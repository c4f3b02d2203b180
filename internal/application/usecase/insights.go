package usecase

import (
	"context"
	"fmt"

	"github.com/autoguardian/vehicle-safety/internal/application/dto"
	"github.com/autoguardian/vehicle-safety/internal/application/port"
	"github.com/autoguardian/vehicle-safety/internal/domain/repository"
	"github.com/autoguardian/vehicle-safety/internal/domain/valueobject"
)

// GetManufacturerInsightsUseCase returns the static failure statistics.
type GetManufacturerInsightsUseCase struct {
	insights repository.InsightRepository
}

func NewGetManufacturerInsightsUseCase(insights repository.InsightRepository) *GetManufacturerInsightsUseCase {
	return &GetManufacturerInsightsUseCase{insights: insights}
}

func (uc *GetManufacturerInsightsUseCase) Execute(ctx context.Context) ([]dto.ManufacturerInsightDTO, error) {
	rows, err := uc.insights.ManufacturerInsights(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load manufacturer insights: %w", err)
	}

	result := make([]dto.ManufacturerInsightDTO, 0, len(rows))
	for _, row := range rows {
		result = append(result, dto.ManufacturerInsightDTO{
			ComponentName: row.ComponentName,
			FailureCount:  row.FailureCount,
			RiskScore:     row.RiskScore,
			Trend:         string(row.Trend),
		})
	}
	return result, nil
}

// GetAgentStatusesUseCase reports the agent roster. Active and processing
// agents count one message per pipeline tick; idle agents report zero.
type GetAgentStatusesUseCase struct {
	insights repository.InsightRepository
	state    port.StateReader
}

func NewGetAgentStatusesUseCase(insights repository.InsightRepository, state port.StateReader) *GetAgentStatusesUseCase {
	return &GetAgentStatusesUseCase{insights: insights, state: state}
}

func (uc *GetAgentStatusesUseCase) Execute(ctx context.Context) ([]dto.AgentStatusDTO, error) {
	agents, err := uc.insights.Agents(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load agents: %w", err)
	}

	state := uc.state.Snapshot()

	result := make([]dto.AgentStatusDTO, 0, len(agents))
	for _, agent := range agents {
		status := dto.AgentStatusDTO{
			Name:        agent.Name,
			Description: agent.Description,
			Status:      string(agent.State),
		}
		if state != nil {
			status.LastUpdate = state.LastTickAt
			if agent.State != valueobject.AgentIdle {
				status.MessageCount = state.TickCount
			}
		}
		result = append(result, status)
	}
	return result, nil
}
