package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Namespace prefixes every metric the binaries export.
const Namespace = "planner"

// Enhancement outcomes.
const (
	OutcomeRemote   = "remote"
	OutcomeFallback = "fallback"
	OutcomeDisabled = "disabled"
)

// Collector holds the service's Prometheus metrics on its own registry.
// A nil *Collector is valid and records nothing.
type Collector struct {
	registry *prometheus.Registry

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec

	enhancements        *prometheus.CounterVec
	enhanceDuration     prometheus.Histogram
	breakerState        prometheus.Gauge
	tasksMaterialized   prometheus.Counter
	notificationsQueued prometheus.Counter
	notificationsSent   prometheus.Counter
}

// NewCollector creates a Collector whose metric names are prefixed by namespace.
func NewCollector(namespace string) *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		enhancements: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "text_enhancements_total",
			Help:      "Text enhancements by outcome",
		}, []string{"outcome"}),
		enhanceDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "text_enhancement_duration_seconds",
			Help:      "Duration of remote text enhancement calls",
			Buckets:   []float64{0.25, 0.5, 1, 2, 5, 10, 20, 30},
		}),
		breakerState: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "enhancer_breaker_state",
			Help:      "Enhancer circuit breaker state (0 closed, 1 half-open, 2 open)",
		}),
		tasksMaterialized: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tasks_materialized_total",
			Help:      "Tasks created from free text",
		}),
		notificationsQueued: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_scheduled_total",
			Help:      "Reminder notifications scheduled",
		}),
		notificationsSent: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_dispatched_total",
			Help:      "Due notifications marked as sent by the sweep",
		}),
	}

	c.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		c.httpRequests,
		c.httpDuration,
		c.enhancements,
		c.enhanceDuration,
		c.breakerState,
		c.tasksMaterialized,
		c.notificationsQueued,
		c.notificationsSent,
	)

	return c
}

// Registry exposes the underlying registry.
func (c *Collector) Registry() *prometheus.Registry {
	if c == nil {
		return nil
	}
	return c.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	if c == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{Registry: c.registry})
}

func (c *Collector) ObserveHTTP(method, route, status string, d time.Duration) {
	if c == nil {
		return
	}
	c.httpRequests.WithLabelValues(method, route, status).Inc()
	c.httpDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

func (c *Collector) IncEnhancement(outcome string) {
	if c == nil {
		return
	}
	c.enhancements.WithLabelValues(outcome).Inc()
}

func (c *Collector) ObserveEnhanceDuration(d time.Duration) {
	if c == nil {
		return
	}
	c.enhanceDuration.Observe(d.Seconds())
}

func (c *Collector) SetBreakerState(state float64) {
	if c == nil {
		return
	}
	c.breakerState.Set(state)
}

func (c *Collector) AddTasksMaterialized(n int) {
	if c == nil {
		return
	}
	c.tasksMaterialized.Add(float64(n))
}

func (c *Collector) AddNotificationsScheduled(n int) {
	if c == nil {
		return
	}
	c.notificationsQueued.Add(float64(n))
}

func (c *Collector) AddNotificationsDispatched(n int) {
	if c == nil {
		return
	}
	c.notificationsSent.Add(float64(n))
}
