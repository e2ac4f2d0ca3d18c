package metrics

import (
	"strconv"
	"time"

	"docintel-be/internal/entity"
	"docintel-be/pkg/events"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics owns a private registry so several instances (one per test) never
// collide on registration.
type Metrics struct {
	registry *prometheus.Registry

	usageUsed     *prometheus.GaugeVec
	usageLimit    *prometheus.GaugeVec
	eventsTotal   *prometheus.CounterVec
	quotaExceeded *prometheus.CounterVec
	httpRequests  *prometheus.CounterVec
	httpDuration  *prometheus.HistogramVec
	httpInFlight  prometheus.Gauge
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		usageUsed: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "docintel_usage_used",
			Help: "Quota consumption for the current billing period.",
		}, []string{"kind"}),
		usageLimit: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "docintel_usage_limit",
			Help: "Quota limit for the current billing period.",
		}, []string{"kind"}),
		eventsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "docintel_workspace_events_total",
			Help: "Workspace and session events by type.",
		}, []string{"type"}),
		quotaExceeded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "docintel_quota_exceeded_total",
			Help: "Usage updates that left a counter above its limit.",
		}, []string{"kind"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		}, []string{"method", "path", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latencies in seconds.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path", "status"}),
		httpInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "http_in_flight_requests",
			Help: "In-flight HTTP requests.",
		}),
	}
	m.registry.MustRegister(
		m.usageUsed, m.usageLimit, m.eventsTotal, m.quotaExceeded,
		m.httpRequests, m.httpDuration, m.httpInFlight,
		collectors.NewGoCollector(),
	)
	return m
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// SetUsage publishes a full usage snapshot, used once at startup.
func (m *Metrics) SetUsage(u entity.Usage) {
	for _, kind := range entity.UsageKinds() {
		used, limit, _ := u.Counter(kind)
		m.usageUsed.WithLabelValues(string(kind)).Set(float64(used))
		m.usageLimit.WithLabelValues(string(kind)).Set(float64(limit))
	}
}

// Observe is the event bus handler.
func (m *Metrics) Observe(evt events.Event) {
	m.eventsTotal.WithLabelValues(evt.EventType()).Inc()

	switch evt.EventType() {
	case events.UsageUpdated:
		kind, _ := evt.Payload()["kind"].(string)
		if used, ok := number(evt.Payload()["used"]); ok && kind != "" {
			m.usageUsed.WithLabelValues(kind).Set(used)
		}
		if limit, ok := number(evt.Payload()["limit"]); ok && kind != "" {
			m.usageLimit.WithLabelValues(kind).Set(limit)
		}
	case events.UsageExceeded:
		kind, _ := evt.Payload()["kind"].(string)
		m.quotaExceeded.WithLabelValues(kind).Inc()
	}
}

// Middleware records request count, latency and in-flight requests. The
// path label is the route pattern so ids do not explode cardinality.
func (m *Metrics) Middleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		m.httpInFlight.Inc()
		start := time.Now()
		err := ctx.Next()
		m.httpInFlight.Dec()

		status := ctx.Response().StatusCode()
		if err != nil {
			if ferr, ok := err.(*fiber.Error); ok {
				status = ferr.Code
			}
		}
		path := ctx.Route().Path
		labels := []string{ctx.Method(), path, strconv.Itoa(status)}
		m.httpRequests.WithLabelValues(labels...).Inc()
		m.httpDuration.WithLabelValues(labels...).Observe(time.Since(start).Seconds())
		return err
	}
}

func (m *Metrics) Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
}

func number(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int64:
		return float64(n), true
	case int:
		return float64(n), true
	}
	return 0, false
}
