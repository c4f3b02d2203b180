package valueobject

// Trend is the direction of a manufacturer failure statistic.
type Trend string

const (
	TrendIncreasing Trend = "increasing"
	TrendStable     Trend = "stable"
	TrendDecreasing Trend = "decreasing"
)

// AgentState is the display state of a pipeline agent.
type AgentState string

const (
	AgentActive     AgentState = "active"
	AgentIdle       AgentState = "idle"
	AgentProcessing AgentState = "processing"
)
