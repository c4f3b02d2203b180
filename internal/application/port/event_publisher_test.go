package port

import "testing"

func TestAlertSubject(t *testing.T) {
	tests := []struct {
		prefix   string
		severity string
		want     string
	}{
		{prefix: "vehicle.alerts", severity: "critical", want: "vehicle.alerts.critical"},
		{prefix: "vehicle.alerts.", severity: "danger", want: "vehicle.alerts.danger"},
		{prefix: "", severity: "warning", want: "warning"},
	}

	for _, tt := range tests {
		if got := AlertSubject(tt.prefix, tt.severity); got != tt.want {
			t.Fatalf("AlertSubject(%q, %q) = %q, want %q", tt.prefix, tt.severity, got, tt.want)
		}
	}
}
