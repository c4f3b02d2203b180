package entity

import "github.com/autoguardian/vehicle-safety/internal/domain/valueobject"

// ServiceCenter is a roadside service provider that can be booked.
type ServiceCenter struct {
	id               string
	name             string
	address          string
	distanceKm       float64
	rating           float64
	available        bool
	estimatedArrival string
	booked           bool
}

func NewServiceCenter(id, name, address string, distanceKm, rating float64, available bool, estimatedArrival string) *ServiceCenter {
	return &ServiceCenter{
		id:               id,
		name:             name,
		address:          address,
		distanceKm:       distanceKm,
		rating:           rating,
		available:        available,
		estimatedArrival: estimatedArrival,
	}
}

func (s *ServiceCenter) ID() string               { return s.id }
func (s *ServiceCenter) Name() string             { return s.name }
func (s *ServiceCenter) Address() string          { return s.address }
func (s *ServiceCenter) DistanceKm() float64      { return s.distanceKm }
func (s *ServiceCenter) Rating() float64          { return s.rating }
func (s *ServiceCenter) Available() bool          { return s.available }
func (s *ServiceCenter) EstimatedArrival() string { return s.estimatedArrival }
func (s *ServiceCenter) Booked() bool             { return s.booked }

// Book marks the center as booked. Only available centers can be booked.
func (s *ServiceCenter) Book() bool {
	if !s.available {
		return false
	}
	s.booked = true
	return true
}

func (s *ServiceCenter) Clone() *ServiceCenter {
	copied := *s
	return &copied
}

// ManufacturerInsight is an aggregated failure statistic for one component.
type ManufacturerInsight struct {
	ComponentName string
	FailureCount  int
	RiskScore     int
	Trend         valueobject.Trend
}

// AgentProfile describes one pipeline agent shown to operators.
type AgentProfile struct {
	Name        string
	Description string
	State       valueobject.AgentState
}
