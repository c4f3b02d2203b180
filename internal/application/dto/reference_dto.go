package dto

import (
	"time"

	"github.com/autoguardian/vehicle-safety/internal/domain/entity"
)

type ServiceCenterDTO struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	Address          string  `json:"address"`
	DistanceKm       float64 `json:"distance_km"`
	Rating           float64 `json:"rating"`
	Available        bool    `json:"available"`
	EstimatedArrival string  `json:"estimated_arrival"`
	Booked           bool    `json:"booked"`
}

func FromServiceCenter(c *entity.ServiceCenter) ServiceCenterDTO {
	return ServiceCenterDTO{
		ID:               c.ID(),
		Name:             c.Name(),
		Address:          c.Address(),
		DistanceKm:       c.DistanceKm(),
		Rating:           c.Rating(),
		Available:        c.Available(),
		EstimatedArrival: c.EstimatedArrival(),
		Booked:           c.Booked(),
	}
}

// EmergencyOverviewDTO combines the service centers with the current risk.
type EmergencyOverviewDTO struct {
	EmergencyActive bool               `json:"emergency_active"`
	RiskLevel       string             `json:"risk_level"`
	RootCause       string             `json:"root_cause"`
	BookedCenterID  string             `json:"booked_center_id,omitempty"`
	ServiceCenters  []ServiceCenterDTO `json:"service_centers"`
}

type ManufacturerInsightDTO struct {
	ComponentName string `json:"component_name"`
	FailureCount  int    `json:"failure_count"`
	RiskScore     int    `json:"risk_score"`
	Trend         string `json:"trend"`
}

type AgentStatusDTO struct {
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Status       string    `json:"status"`
	LastUpdate   time.Time `json:"last_update"`
	MessageCount uint64    `json:"message_count"`
}
