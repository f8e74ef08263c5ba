package metrics

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// HTTPMetrics holds the request-level prometheus instruments.
type HTTPMetrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// RecordMetrics holds counters for durable writes.
type RecordMetrics struct {
	payments  *prometheus.CounterVec
	donations *prometheus.CounterVec
}

func NewHTTPMetrics(reg prometheus.Registerer) (*HTTPMetrics, error) {
	m := &HTTPMetrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "trackify_http_requests_total",
			Help: "HTTP requests by route, method and status.",
		}, []string{"route", "method", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "trackify_http_request_duration_seconds",
			Help:    "HTTP request latency by route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "method"}),
	}
	for _, c := range []prometheus.Collector{m.requests, m.duration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func NewRecordMetrics(reg prometheus.Registerer) (*RecordMetrics, error) {
	m := &RecordMetrics{
		payments: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "trackify_payments_recorded_total",
			Help: "Payment records created, by service kind.",
		}, []string{"service_kind"}),
		donations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "trackify_donations_recorded_total",
			Help: "Donation records created, by type.",
		}, []string{"type"}),
	}
	for _, c := range []prometheus.Collector{m.payments, m.donations} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	return reg
}

func (m *RecordMetrics) PaymentRecorded(serviceKind string) {
	if m == nil {
		return
	}
	m.payments.WithLabelValues(serviceKind).Inc()
}

func (m *RecordMetrics) DonationRecorded(donationType string) {
	if m == nil {
		return
	}
	m.donations.WithLabelValues(donationType).Inc()
}

// GinMiddleware records request counts and latencies per route.
func GinMiddleware(m *HTTPMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if strings.TrimSpace(route) == "" {
			route = "unknown"
		}
		method := c.Request.Method
		status := statusClass(c.Writer.Status())

		m.requests.WithLabelValues(route, method, status).Inc()
		m.duration.WithLabelValues(route, method).Observe(time.Since(start).Seconds())
	}
}

func statusClass(status int) string {
	switch {
	case status >= 500:
		return "5xx"
	case status >= 400:
		return "4xx"
	case status >= 300:
		return "3xx"
	default:
		return "2xx"
	}
}
