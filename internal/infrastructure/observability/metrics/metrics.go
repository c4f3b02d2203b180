package metrics

import (
	"bufio"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "vehicle_safety"

// Metrics bundles the prometheus collectors of the service.
// Implements port.PipelineMetrics.
type Metrics struct {
	TicksTotal       *prometheus.CounterVec
	RiskScore        prometheus.Gauge
	AlertsTotal      *prometheus.CounterVec
	AlertHistorySize prometheus.Gauge
	CommandsTotal    *prometheus.CounterVec
	Utterances       prometheus.Counter
	PublishFailures  prometheus.Counter
	RateLimitDropped prometheus.Counter

	RequestsTotal      *prometheus.CounterVec
	RequestDurationSec *prometheus.HistogramVec

	registry *prometheus.Registry
}

func New(registry *prometheus.Registry) *Metrics {
	m := &Metrics{
		TicksTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ticks_total",
			Help:      "Total number of pipeline ticks by resulting risk level.",
		}, []string{"level"}),
		RiskScore: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "risk_score",
			Help:      "Risk score of the latest tick.",
		}),
		AlertsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "alerts_total",
			Help:      "Total number of alerts raised by severity.",
		}, []string{"severity"}),
		AlertHistorySize: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "alert_history_size",
			Help:      "Number of alerts currently retained.",
		}),
		CommandsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "commands_total",
			Help:      "Total number of controller commands.",
		}, []string{"command"}),
		Utterances: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "voice_utterances_total",
			Help:      "Total number of spoken alerts.",
		}),
		PublishFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "alert_publish_failures_total",
			Help:      "Total number of alert events the broker did not accept.",
		}),
		RateLimitDropped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ratelimit_dropped_total",
			Help:      "Total number of requests dropped by rate limiter.",
		}),
		RequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests.",
		}, []string{"route", "method", "status"}),
		RequestDurationSec: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method", "status"}),
		registry: registry,
	}

	registry.MustRegister(
		m.TicksTotal,
		m.RiskScore,
		m.AlertsTotal,
		m.AlertHistorySize,
		m.CommandsTotal,
		m.Utterances,
		m.PublishFailures,
		m.RateLimitDropped,
		m.RequestsTotal,
		m.RequestDurationSec,
	)

	return m
}

func (m *Metrics) ObserveTick(level string, score int) {
	m.TicksTotal.WithLabelValues(level).Inc()
	m.RiskScore.Set(float64(score))
}

func (m *Metrics) ObserveAlert(severity string)  { m.AlertsTotal.WithLabelValues(severity).Inc() }
func (m *Metrics) ObserveCommand(command string) { m.CommandsTotal.WithLabelValues(command).Inc() }
func (m *Metrics) SetAlertHistorySize(size int)  { m.AlertHistorySize.Set(float64(size)) }
func (m *Metrics) ObserveUtterance()             { m.Utterances.Inc() }
func (m *Metrics) ObservePublishFailure()        { m.PublishFailures.Inc() }
func (m *Metrics) ObserveRateLimited()           { m.RateLimitDropped.Inc() }

// Handler serves the registry in the prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		startedAt := time.Now()
		wrapped := &statusRecorder{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(wrapped, r)

		status := strconv.Itoa(wrapped.statusCode)
		route := normalizeRoute(r.URL.Path)
		m.RequestsTotal.WithLabelValues(route, r.Method, status).Inc()
		m.RequestDurationSec.WithLabelValues(route, r.Method, status).Observe(time.Since(startedAt).Seconds())
	})
}

var apiRoutes = map[string]bool{
	"/api/v1/simulation/state":         true,
	"/api/v1/simulation/run/toggle":    true,
	"/api/v1/simulation/regime/toggle": true,
	"/api/v1/simulation/tick":          true,
	"/api/v1/alerts/clear":             true,
	"/api/v1/emergency":                true,
	"/api/v1/insights":                 true,
	"/api/v1/agents":                   true,
}

// normalizeRoute keeps label cardinality bounded: path ids collapse to "*".
func normalizeRoute(path string) string {
	switch {
	case path == "/ws", path == "/metrics", path == "/healthz", path == "/readyz":
		return path
	case strings.HasPrefix(path, "/api/v1/alerts/") && strings.HasSuffix(path, "/acknowledge"):
		return "/api/v1/alerts/*/acknowledge"
	case strings.HasPrefix(path, "/api/v1/emergency/service-centers/"):
		return "/api/v1/emergency/service-centers/*/book"
	case apiRoutes[path]:
		return path
	case strings.HasPrefix(path, "/api/"):
		return "/api/*"
	case path == "/" || strings.HasPrefix(path, "/static/"):
		return "static"
	default:
		return "other"
	}
}

type statusRecorder struct {
	http.ResponseWriter
	statusCode int
}

func (rw *statusRecorder) WriteHeader(statusCode int) {
	rw.statusCode = statusCode
	rw.ResponseWriter.WriteHeader(statusCode)
}

// Hijack passes websocket upgrades through wrapped ResponseWriter.
func (rw *statusRecorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	hijacker, ok := rw.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, fmt.Errorf("response writer does not support hijacking")
	}
	return hijacker.Hijack()
}

func (rw *statusRecorder) Flush() {
	if flusher, ok := rw.ResponseWriter.(http.Flusher); ok {
		flusher.Flush()
	}
}
