package valueobject

import "fmt"

// TirePressure holds the four independent tire readings in PSI (Value Object).
type TirePressure struct {
	frontLeft  float64
	frontRight float64
	rearLeft   float64
	rearRight  float64
}

func NewTirePressure(frontLeft, frontRight, rearLeft, rearRight float64) TirePressure {
	return TirePressure{
		frontLeft:  frontLeft,
		frontRight: frontRight,
		rearLeft:   rearLeft,
		rearRight:  rearRight,
	}
}

func (tp TirePressure) FrontLeft() float64  { return tp.frontLeft }
func (tp TirePressure) FrontRight() float64 { return tp.frontRight }
func (tp TirePressure) RearLeft() float64   { return tp.rearLeft }
func (tp TirePressure) RearRight() float64  { return tp.rearRight }

// All returns readings in FL, FR, RL, RR order.
func (tp TirePressure) All() [4]float64 {
	return [4]float64{tp.frontLeft, tp.frontRight, tp.rearLeft, tp.rearRight}
}

// AnyBelow reports whether at least one tire reads strictly below limit.
func (tp TirePressure) AnyBelow(limit float64) bool {
	for _, p := range tp.All() {
		if p < limit {
			return true
		}
	}
	return false
}

func (tp TirePressure) String() string {
	return fmt.Sprintf("FL=%.1f FR=%.1f RL=%.1f RR=%.1f", tp.frontLeft, tp.frontRight, tp.rearLeft, tp.rearRight)
}
