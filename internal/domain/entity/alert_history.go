package entity

// DefaultAlertHistoryCapacity is the number of alerts retained.
const DefaultAlertHistoryCapacity = 10

// AlertHistory keeps the most recent alerts, newest first. When full, the
// oldest alert is evicted. It is not safe for concurrent use.
type AlertHistory struct {
	capacity int
	alerts   []*Alert
}

func NewAlertHistory(capacity int) *AlertHistory {
	if capacity <= 0 {
		capacity = DefaultAlertHistoryCapacity
	}
	return &AlertHistory{
		capacity: capacity,
		alerts:   make([]*Alert, 0, capacity),
	}
}

// Prepend inserts alert at the front and truncates to capacity.
func (h *AlertHistory) Prepend(alert *Alert) {
	if alert == nil {
		return
	}

	next := make([]*Alert, 0, h.capacity)
	next = append(next, alert)
	next = append(next, h.alerts...)
	if len(next) > h.capacity {
		next = next[:h.capacity]
	}
	h.alerts = next
}

// Acknowledge flags the alert with the given id. Unknown ids are ignored;
// the result reports whether a match existed.
func (h *AlertHistory) Acknowledge(id string) bool {
	for _, a := range h.alerts {
		if a.ID() == id {
			a.Acknowledge()
			return true
		}
	}
	return false
}

func (h *AlertHistory) Clear() {
	h.alerts = make([]*Alert, 0, h.capacity)
}

// Items returns copies of the retained alerts, newest first.
func (h *AlertHistory) Items() []*Alert {
	items := make([]*Alert, 0, len(h.alerts))
	for _, a := range h.alerts {
		items = append(items, a.Clone())
	}
	return items
}

// LatestUnacknowledged returns a copy of the newest alert not yet
// acknowledged, or nil.
func (h *AlertHistory) LatestUnacknowledged() *Alert {
	for _, a := range h.alerts {
		if !a.Acknowledged() {
			return a.Clone()
		}
	}
	return nil
}

func (h *AlertHistory) Len() int {
	return len(h.alerts)
}

func (h *AlertHistory) Capacity() int {
	return h.capacity
}
