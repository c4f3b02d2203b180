package valueobject

import "testing"

func TestLevelForScore(t *testing.T) {
	tests := []struct {
		score int
		want  RiskLevel
	}{
		{score: 0, want: RiskLow},
		{score: 24, want: RiskLow},
		{score: 25, want: RiskMedium},
		{score: 49, want: RiskMedium},
		{score: 50, want: RiskHigh},
		{score: 74, want: RiskHigh},
		{score: 75, want: RiskCritical},
		{score: 100, want: RiskCritical},
	}

	for _, tt := range tests {
		if got := LevelForScore(tt.score); got != tt.want {
			t.Fatalf("LevelForScore(%d) = %s, want %s", tt.score, got, tt.want)
		}
	}
}

func TestLevelForScoreIsMonotonic(t *testing.T) {
	prev := LevelForScore(0).Rank()
	for score := 1; score <= MaxRiskScore; score++ {
		rank := LevelForScore(score).Rank()
		if rank < prev {
			t.Fatalf("level rank decreased at score %d", score)
		}
		prev = rank
	}
}

func TestClampScore(t *testing.T) {
	if got := ClampScore(110); got != 100 {
		t.Fatalf("ClampScore(110) = %d, want 100", got)
	}
	if got := ClampScore(-5); got != 0 {
		t.Fatalf("ClampScore(-5) = %d, want 0", got)
	}
	if got := ClampScore(42); got != 42 {
		t.Fatalf("ClampScore(42) = %d, want 42", got)
	}
}

func TestSeverityForLevel(t *testing.T) {
	tests := map[RiskLevel]AlertSeverity{
		RiskLow:      SeverityInfo,
		RiskMedium:   SeverityWarning,
		RiskHigh:     SeverityDanger,
		RiskCritical: SeverityCritical,
	}

	for level, want := range tests {
		if got := SeverityForLevel(level); got != want {
			t.Fatalf("SeverityForLevel(%s) = %s, want %s", level, got, want)
		}
	}
}

func TestRegimeToggle(t *testing.T) {
	if RegimeNormal.Toggle() != RegimeElevated {
		t.Fatalf("normal should toggle to elevated")
	}
	if RegimeElevated.Toggle() != RegimeNormal {
		t.Fatalf("elevated should toggle to normal")
	}
	if err := Regime("storm").Validate(); err == nil {
		t.Fatalf("expected validation error for unknown regime")
	}
}

func TestTirePressureAnyBelow(t *testing.T) {
	tp := NewTirePressure(26, 33, 33, 15)
	if !tp.AnyBelow(20) {
		t.Fatalf("expected a tire below 20")
	}
	if NewTirePressure(25, 25, 25, 25).AnyBelow(25) {
		t.Fatalf("25 is not strictly below 25")
	}
}
