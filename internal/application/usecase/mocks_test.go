package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/autoguardian/vehicle-safety/internal/application/dto"
	"github.com/autoguardian/vehicle-safety/internal/domain/entity"
	"github.com/autoguardian/vehicle-safety/internal/domain/repository"
	"github.com/autoguardian/vehicle-safety/internal/domain/valueobject"
)

type fixedSource struct {
	snapshot *entity.TelemetrySnapshot
	regimes  []valueobject.Regime
}

func (s *fixedSource) Generate(regime valueobject.Regime) *entity.TelemetrySnapshot {
	s.regimes = append(s.regimes, regime)
	return s.snapshot
}

type mockPlayer struct {
	mu       sync.Mutex
	spoken   []string
	err      error
	stopped  int
	speaking bool
}

func (p *mockPlayer) Speak(_ context.Context, text string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.spoken = append(p.spoken, text)
	if p.err != nil {
		p.speaking = false
		return p.err
	}
	p.speaking = true
	return nil
}

func (p *mockPlayer) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopped++
	p.speaking = false
}

func (p *mockPlayer) IsSpeaking() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.speaking
}

type mockNotifier struct {
	states []*dto.SimulationStateDTO
	alerts []*dto.AlertDTO
}

func (n *mockNotifier) Broadcast(state *dto.SimulationStateDTO) { n.states = append(n.states, state) }
func (n *mockNotifier) BroadcastAlert(alert *dto.AlertDTO)      { n.alerts = append(n.alerts, alert) }
func (n *mockNotifier) ClientCount() int                        { return 0 }

type publishedEvent struct {
	subject string
	event   interface{}
}

type mockPublisher struct {
	events []publishedEvent
	err    error
}

func (p *mockPublisher) PublishEvent(_ context.Context, subject string, event interface{}) error {
	p.events = append(p.events, publishedEvent{subject: subject, event: event})
	return p.err
}

func (p *mockPublisher) Close() error { return nil }

type mockMetrics struct {
	alerts          []string
	historySize     int
	utterances      int
	publishFailures int
}

func (m *mockMetrics) ObserveTick(string, int)      {}
func (m *mockMetrics) ObserveAlert(severity string) { m.alerts = append(m.alerts, severity) }
func (m *mockMetrics) ObserveCommand(string)        {}
func (m *mockMetrics) SetAlertHistorySize(size int) { m.historySize = size }
func (m *mockMetrics) ObserveUtterance()            { m.utterances++ }
func (m *mockMetrics) ObservePublishFailure()       { m.publishFailures++ }

type staticState struct {
	state *dto.SimulationStateDTO
}

func (s staticState) Snapshot() *dto.SimulationStateDTO { return s.state.Clone() }

type mockCenterRepo struct {
	centers  []*entity.ServiceCenter
	bookedID string
	listErr  error
}

func (r *mockCenterRepo) List(context.Context) ([]*entity.ServiceCenter, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	return r.centers, nil
}

func (r *mockCenterRepo) Book(_ context.Context, id string) (*entity.ServiceCenter, error) {
	for _, c := range r.centers {
		if c.ID() != id {
			continue
		}
		if !c.Book() {
			return nil, repository.ErrServiceCenterUnavailable
		}
		r.bookedID = id
		return c.Clone(), nil
	}
	return nil, repository.ErrServiceCenterNotFound
}

func (r *mockCenterRepo) BookedID(context.Context) (string, error) { return r.bookedID, nil }

type mockInsightRepo struct {
	insights []entity.ManufacturerInsight
	agents   []entity.AgentProfile
}

func (r *mockInsightRepo) ManufacturerInsights(context.Context) ([]entity.ManufacturerInsight, error) {
	return r.insights, nil
}

func (r *mockInsightRepo) Agents(context.Context) ([]entity.AgentProfile, error) {
	return r.agents, nil
}

var errBoom = errors.New("boom")

func fixedTime() time.Time {
	return time.Date(2026, 5, 4, 3, 2, 1, 0, time.UTC)
}
