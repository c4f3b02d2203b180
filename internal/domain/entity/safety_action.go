package entity

// SafetyAction is one candidate response in a ranked action set.
type SafetyAction struct {
	id          string
	name        string
	description string
	reasoning   string
	probability float64
	selected    bool
}

func NewSafetyAction(id, name, description, reasoning string, probability float64, selected bool) *SafetyAction {
	return &SafetyAction{
		id:          id,
		name:        name,
		description: description,
		reasoning:   reasoning,
		probability: probability,
		selected:    selected,
	}
}

func (a *SafetyAction) ID() string           { return a.id }
func (a *SafetyAction) Name() string         { return a.name }
func (a *SafetyAction) Description() string  { return a.description }
func (a *SafetyAction) Reasoning() string    { return a.reasoning }
func (a *SafetyAction) Probability() float64 { return a.probability }
func (a *SafetyAction) Selected() bool       { return a.selected }

// SelectedAction returns the selected action of a ranked set, or nil.
func SelectedAction(actions []*SafetyAction) *SafetyAction {
	for _, a := range actions {
		if a.selected {
			return a
		}
	}
	return nil
}
