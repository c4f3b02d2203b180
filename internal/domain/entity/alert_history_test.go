package entity

import (
	"fmt"
	"testing"
	"time"

	"github.com/autoguardian/vehicle-safety/internal/domain/valueobject"
)

func newTestAlert(id string) *Alert {
	return NewAlert(id, valueobject.SeverityWarning, "MEDIUM RISK: test", "test", "voice", time.Unix(0, 0))
}

func TestAlertHistory_PrependEvictsOldest(t *testing.T) {
	h := NewAlertHistory(10)
	for i := 0; i < 12; i++ {
		h.Prepend(newTestAlert(fmt.Sprintf("a%d", i)))
	}

	if h.Len() != 10 {
		t.Fatalf("expected 10 alerts, got %d", h.Len())
	}

	items := h.Items()
	if items[0].ID() != "a11" {
		t.Fatalf("expected newest first, got %s", items[0].ID())
	}
	if items[9].ID() != "a2" {
		t.Fatalf("expected a2 as oldest retained, got %s", items[9].ID())
	}
}

func TestAlertHistory_AcknowledgeUnknownIsNoop(t *testing.T) {
	h := NewAlertHistory(10)
	h.Prepend(newTestAlert("a1"))

	if h.Acknowledge("missing") {
		t.Fatalf("expected no match for unknown id")
	}
	if h.Items()[0].Acknowledged() {
		t.Fatalf("unknown id must not acknowledge anything")
	}
	if h.Len() != 1 {
		t.Fatalf("history changed on unknown acknowledge")
	}
}

func TestAlertHistory_AcknowledgeIsSticky(t *testing.T) {
	h := NewAlertHistory(10)
	h.Prepend(newTestAlert("a1"))
	h.Prepend(newTestAlert("a2"))

	if !h.Acknowledge("a1") {
		t.Fatalf("expected match for a1")
	}
	h.Acknowledge("a1")

	items := h.Items()
	if !items[1].Acknowledged() {
		t.Fatalf("a1 should be acknowledged")
	}
	if items[0].Acknowledged() {
		t.Fatalf("a2 should stay unacknowledged")
	}
	if latest := h.LatestUnacknowledged(); latest == nil || latest.ID() != "a2" {
		t.Fatalf("expected a2 as latest unacknowledged, got %v", latest)
	}
}

func TestAlertHistory_ItemsAreCopies(t *testing.T) {
	h := NewAlertHistory(10)
	h.Prepend(newTestAlert("a1"))

	h.Items()[0].Acknowledge()

	if h.Items()[0].Acknowledged() {
		t.Fatalf("mutating a returned copy must not change history")
	}
}

func TestAlertHistory_Clear(t *testing.T) {
	h := NewAlertHistory(10)
	h.Prepend(newTestAlert("a1"))
	h.Prepend(newTestAlert("a2"))
	h.Acknowledge("a2")

	h.Clear()

	if h.Len() != 0 {
		t.Fatalf("expected empty history, got %d", h.Len())
	}
	if h.LatestUnacknowledged() != nil {
		t.Fatalf("expected no alerts after clear")
	}
}

func TestServiceCenterBook(t *testing.T) {
	open := NewServiceCenter("1", "AutoCare Express", "addr", 2.3, 4.8, true, "8 min")
	closed := NewServiceCenter("4", "RoadSide Rescue", "addr", 7.2, 4.3, false, "22 min")

	if !open.Book() || !open.Booked() {
		t.Fatalf("available center should be bookable")
	}
	if closed.Book() || closed.Booked() {
		t.Fatalf("unavailable center must not be booked")
	}
}
