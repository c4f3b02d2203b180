package service

import (
	"github.com/autoguardian/vehicle-safety/internal/domain/entity"
	"github.com/autoguardian/vehicle-safety/internal/domain/valueobject"
)

// ActionArchetype is one of the fixed candidate safety responses with its
// probability per risk level.
type ActionArchetype struct {
	ID            string
	Name          string
	Description   string
	Reasoning     string
	Probabilities map[valueobject.RiskLevel]float64
}

// DefaultActionArchetypes lists archetypes in declaration order, which also
// breaks ties during selection.
var DefaultActionArchetypes = []ActionArchetype{
	{
		ID:          "1",
		Name:        "Continue Driving",
		Description: "Maintain current driving pattern with monitoring",
		Reasoning:   "Continue if conditions are safe and stable",
		Probabilities: map[valueobject.RiskLevel]float64{
			valueobject.RiskLow:      0.85,
			valueobject.RiskMedium:   0.40,
			valueobject.RiskHigh:     0.10,
			valueobject.RiskCritical: 0.10,
		},
	},
	{
		ID:          "2",
		Name:        "Reduce Speed",
		Description: "Gradually decrease speed to reduce system stress",
		Reasoning:   "Speed reduction minimizes thermal and mechanical stress",
		Probabilities: map[valueobject.RiskLevel]float64{
			valueobject.RiskLow:      0.20,
			valueobject.RiskMedium:   0.70,
			valueobject.RiskHigh:     0.50,
			valueobject.RiskCritical: 0.20,
		},
	},
	{
		ID:          "3",
		Name:        "Pull Over Safely",
		Description: "Find a safe location to stop and allow systems to cool",
		Reasoning:   "Stopping prevents further damage and allows inspection",
		Probabilities: map[valueobject.RiskLevel]float64{
			valueobject.RiskLow:      0.15,
			valueobject.RiskMedium:   0.15,
			valueobject.RiskHigh:     0.75,
			valueobject.RiskCritical: 0.60,
		},
	},
	{
		ID:          "4",
		Name:        "Emergency Service",
		Description: "Contact emergency services and request immediate assistance",
		Reasoning:   "Professional intervention required for critical situations",
		Probabilities: map[valueobject.RiskLevel]float64{
			valueobject.RiskLow:      0.05,
			valueobject.RiskMedium:   0.05,
			valueobject.RiskHigh:     0.30,
			valueobject.RiskCritical: 0.90,
		},
	},
}

// ActionRanker builds the ranked action set for an analysis (Domain Service).
type ActionRanker struct {
	archetypes []ActionArchetype
}

func NewActionRanker() *ActionRanker {
	return &ActionRanker{archetypes: DefaultActionArchetypes}
}

// Rank returns one action per archetype in declaration order. Exactly one
// action is selected: the first with the maximal probability.
func (r *ActionRanker) Rank(analysis *entity.RiskAnalysis) []*entity.SafetyAction {
	level := valueobject.RiskLow
	if analysis != nil {
		level = analysis.Level()
	}

	probabilities := make([]float64, len(r.archetypes))
	best := -1
	for i, archetype := range r.archetypes {
		p, ok := archetype.Probabilities[level]
		if !ok {
			// unlisted levels use the LOW figure
			p = archetype.Probabilities[valueobject.RiskLow]
		}
		probabilities[i] = p
		if best < 0 || p > probabilities[best] {
			best = i
		}
	}

	actions := make([]*entity.SafetyAction, 0, len(r.archetypes))
	for i, archetype := range r.archetypes {
		actions = append(actions, entity.NewSafetyAction(
			archetype.ID,
			archetype.Name,
			archetype.Description,
			archetype.Reasoning,
			probabilities[i],
			i == best,
		))
	}

	return actions
}
