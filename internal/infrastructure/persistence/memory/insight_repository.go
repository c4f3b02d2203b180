package memory

import (
	"context"

	"github.com/autoguardian/vehicle-safety/internal/domain/entity"
)

// InsightRepository implements repository.InsightRepository over fixed data.
type InsightRepository struct {
	insights []entity.ManufacturerInsight
	agents   []entity.AgentProfile
}

func NewInsightRepository(insights []entity.ManufacturerInsight, agents []entity.AgentProfile) *InsightRepository {
	return &InsightRepository{
		insights: append([]entity.ManufacturerInsight(nil), insights...),
		agents:   append([]entity.AgentProfile(nil), agents...),
	}
}

func NewDefaultInsightRepository() *InsightRepository {
	return NewInsightRepository(DefaultManufacturerInsights(), DefaultAgents())
}

func (r *InsightRepository) ManufacturerInsights(ctx context.Context) ([]entity.ManufacturerInsight, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return append([]entity.ManufacturerInsight(nil), r.insights...), nil
}

func (r *InsightRepository) Agents(ctx context.Context) ([]entity.AgentProfile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return append([]entity.AgentProfile(nil), r.agents...), nil
}
