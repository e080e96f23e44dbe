package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsRegistry holds all Prometheus metrics for EventHub
type MetricsRegistry struct {
	// HTTP Metrics
	HTTPRequestsTotal    prometheus.CounterVec
	HTTPRequestDuration  prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.GaugeVec

	// Business Metrics
	SignupsTotal          prometheus.Counter
	RegistrationsTotal    *prometheus.CounterVec
	AttendanceMarksTotal  *prometheus.CounterVec
	PaymentsVerifiedTotal prometheus.Counter
	ResetEmailsSentTotal  prometheus.Counter
}

// NewMetricsRegistry initializes and returns a new MetricsRegistry with all metrics
func NewMetricsRegistry() *MetricsRegistry {
	return &MetricsRegistry{
		HTTPRequestsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "eventhub_http_requests_total",
				Help: "Total HTTP requests processed by endpoint, method, and status code",
			},
			[]string{"endpoint", "method", "status_code"},
		),
		HTTPRequestDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "eventhub_http_request_duration_seconds",
				Help:    "HTTP request latency distribution in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"endpoint", "method"},
		),
		HTTPRequestsInFlight: *promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "eventhub_http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
			[]string{"endpoint"},
		),

		SignupsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "eventhub_signups_total",
				Help: "Total successful student signups",
			},
		),
		RegistrationsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "eventhub_registrations_total",
				Help: "Total event registrations by role (participant or volunteer)",
			},
			[]string{"role"},
		),
		AttendanceMarksTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "eventhub_attendance_marks_total",
				Help: "Total attendance marks by role",
			},
			[]string{"role"},
		),
		PaymentsVerifiedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "eventhub_payments_verified_total",
				Help: "Total payments that passed signature verification",
			},
		),
		ResetEmailsSentTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "eventhub_reset_emails_sent_total",
				Help: "Total password reset emails sent",
			},
		),
	}
}
