package simulation

import (
	"errors"
	"fmt"
	"time"

	"github.com/autoguardian/vehicle-safety/internal/application/port"
	"github.com/autoguardian/vehicle-safety/internal/domain/entity"
	"github.com/zoobzio/clockz"
)

const (
	DefaultTickInterval = 2500 * time.Millisecond
	MinTickInterval     = 100 * time.Millisecond
)

var ErrAlreadyStarted = errors.New("simulation: controller already started")

// Options configures a Controller. Zero values fall back to defaults.
type Options struct {
	Interval        time.Duration
	HistoryCapacity int
	StartRunning    bool
	StartElevated   bool

	Clock     clockz.Clock
	Publisher Publisher
	Metrics   port.PipelineMetrics
}

// DefaultOptions starts running in the normal regime on the real clock.
func DefaultOptions() Options {
	return Options{
		Interval:        DefaultTickInterval,
		HistoryCapacity: entity.DefaultAlertHistoryCapacity,
		StartRunning:    true,
		Clock:           clockz.RealClock,
	}
}

func (o Options) withDefaults() (Options, error) {
	if o.Interval == 0 {
		o.Interval = DefaultTickInterval
	}
	if o.Interval < MinTickInterval {
		return o, fmt.Errorf("simulation: tick interval %s is below %s", o.Interval, MinTickInterval)
	}
	if o.HistoryCapacity <= 0 {
		o.HistoryCapacity = entity.DefaultAlertHistoryCapacity
	}
	if o.Clock == nil {
		o.Clock = clockz.RealClock
	}
	return o, nil
}
