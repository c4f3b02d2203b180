package memory

import (
	"github.com/autoguardian/vehicle-safety/internal/domain/entity"
	"github.com/autoguardian/vehicle-safety/internal/domain/valueobject"
)

func DefaultServiceCenters() []*entity.ServiceCenter {
	return []*entity.ServiceCenter{
		entity.NewServiceCenter("1", "AutoCare Express", "1234 Highway Drive, Tech Park", 2.3, 4.8, true, "8 min"),
		entity.NewServiceCenter("2", "QuickFix Motors", "567 Industrial Ave, Zone B", 4.1, 4.5, true, "12 min"),
		entity.NewServiceCenter("3", "Premium Auto Service", "890 Main Street, Downtown", 5.7, 4.9, true, "15 min"),
		entity.NewServiceCenter("4", "RoadSide Rescue", "321 Service Road, Block C", 7.2, 4.3, false, "22 min"),
	}
}

func DefaultManufacturerInsights() []entity.ManufacturerInsight {
	return []entity.ManufacturerInsight{
		{ComponentName: "Brake System", FailureCount: 234, RiskScore: 72, Trend: valueobject.TrendDecreasing},
		{ComponentName: "Tire Pressure Sensors", FailureCount: 156, RiskScore: 45, Trend: valueobject.TrendStable},
		{ComponentName: "Battery Module", FailureCount: 89, RiskScore: 38, Trend: valueobject.TrendIncreasing},
		{ComponentName: "Engine Cooling", FailureCount: 67, RiskScore: 55, Trend: valueobject.TrendStable},
		{ComponentName: "Transmission", FailureCount: 43, RiskScore: 28, Trend: valueobject.TrendDecreasing},
	}
}

func DefaultAgents() []entity.AgentProfile {
	return []entity.AgentProfile{
		{Name: "Sensor Agent", Description: "Real-time vehicle telemetry monitoring and data collection", State: valueobject.AgentActive},
		{Name: "AI Risk Analysis Agent", Description: "Continuous anomaly detection and risk score calculation", State: valueobject.AgentProcessing},
		{Name: "Quantum Optimizer Agent", Description: "Multi-path safety decision evaluation using hybrid algorithms", State: valueobject.AgentActive},
		{Name: "Driver Communication Agent", Description: "Voice and visual alert generation for driver safety", State: valueobject.AgentActive},
		{Name: "Service Coordination Agent", Description: "Emergency service discovery and booking management", State: valueobject.AgentIdle},
		{Name: "Manufacturer Insights Agent", Description: "Aggregated analytics for fleet safety improvements", State: valueobject.AgentIdle},
	}
}
