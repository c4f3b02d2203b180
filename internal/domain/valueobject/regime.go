package valueobject

import "errors"

// Regime selects the sampling profile used for telemetry generation.
type Regime string

const (
	RegimeNormal   Regime = "normal"
	RegimeElevated Regime = "elevated"
)

func (r Regime) Validate() error {
	switch r {
	case RegimeNormal, RegimeElevated:
		return nil
	default:
		return errors.New("invalid regime")
	}
}

// Toggle returns the opposite regime. Anything unknown toggles to elevated.
func (r Regime) Toggle() Regime {
	if r == RegimeElevated {
		return RegimeNormal
	}
	return RegimeElevated
}

func (r Regime) IsElevated() bool {
	return r == RegimeElevated
}

func (r Regime) String() string {
	return string(r)
}
