package metrics

import (
	"flightbook/config"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const defaultNamespace = "flightbook"

// Metrics holds all prometheus metrics exposed on /metrics.
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequests      *prometheus.CounterVec
	HTTPDuration      *prometheus.HistogramVec
	BookingsCreated   prometheus.Counter
	BookingsCancelled prometheus.Counter
	TicketsCancelled  prometheus.Counter
	LegacyMigrated    prometheus.Counter
	LegacyReverted    prometheus.Counter
	Compensations     *prometheus.CounterVec
	ErrorsCount       *prometheus.CounterVec
}

func New(cfg *config.Config) *Metrics {
	return NewMetrics(cfg.Metrics.Namespace)
}

// NewMetrics builds the collectors on a private registry so several instances can coexist in tests.
func NewMetrics(namespace string) *Metrics {
	if namespace == "" {
		namespace = defaultNamespace
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		HTTPRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "The total number of HTTP requests",
		}, []string{"method", "route", "status"}),
		HTTPDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Time taken to serve HTTP requests",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		BookingsCreated: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bookings_created_total",
			Help:      "The total number of bookings created",
		}),
		BookingsCancelled: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bookings_cancelled_total",
			Help:      "The total number of bookings cancelled",
		}),
		TicketsCancelled: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tickets_cancelled_total",
			Help:      "The total number of legacy tickets cancelled",
		}),
		LegacyMigrated: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "legacy_bookings_migrated_total",
			Help:      "The total number of bookings flagged as legacy",
		}),
		LegacyReverted: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "legacy_bookings_reverted_total",
			Help:      "The total number of bookings reverted to non-legacy",
		}),
		Compensations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "saga_compensations_total",
			Help:      "The total number of saga compensation steps run",
		}, []string{"saga", "step", "result"}),
		ErrorsCount: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "errors_total",
			Help:      "The total number of errors",
		}, []string{"operation"}),
	}
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
