package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics for the application.
// Each instance owns its registry so tests can build as many as they need.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	RequestsTotal         *prometheus.CounterVec
	RequestDuration       *prometheus.HistogramVec
	VolunteersCreated     prometheus.Counter
	VolunteersDeactivated prometheus.Counter
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		RequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "volunteer_registry_http_requests_total",
			Help: "Total number of HTTP requests by method, route and status",
		}, []string{"method", "route", "status"}),
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "volunteer_registry_http_request_duration_seconds",
			Help:    "Duration of HTTP requests by method and route",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"method", "route"}),
		VolunteersCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "volunteer_registry_volunteers_created_total",
			Help: "Total number of volunteers registered",
		}),
		VolunteersDeactivated: factory.NewCounter(prometheus.CounterOpts{
			Name: "volunteer_registry_volunteers_deactivated_total",
			Help: "Total number of volunteers moved to inactive by soft delete",
		}),
	}
}

// Handler exposes the registry in the Prometheus text format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// IncrementVolunteersCreated records a successful registration
func (m *Metrics) IncrementVolunteersCreated() {
	if m == nil {
		return
	}
	m.VolunteersCreated.Inc()
}

// IncrementVolunteersDeactivated records a soft delete
func (m *Metrics) IncrementVolunteersDeactivated() {
	if m == nil {
		return
	}
	m.VolunteersDeactivated.Inc()
}

// ObserveRequest records one finished HTTP request.
// Call with time.Now() taken before the handler chain ran.
func (m *Metrics) ObserveRequest(method, route string, status int, start time.Time) {
	if m == nil {
		return
	}
	m.RequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.RequestDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
}
