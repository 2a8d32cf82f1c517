package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Authentication metrics
	SigninAttempts prometheus.Counter
	SigninFailures prometheus.Counter
	SignupsTotal   prometheus.Counter

	// Domain metrics
	LockTransitionsTotal *prometheus.CounterVec
	LockAssignmentsTotal prometheus.Counter
	WebsocketClients     prometheus.Gauge
)

// Init registers all metrics under the given prefix.
func Init(prefix string) {
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
	SigninAttempts = promauto.NewCounter(prometheus.CounterOpts{
		Name: prefix + "_signin_attempts_total",
		Help: "Total number of sign-in attempts",
	})
	SigninFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: prefix + "_signin_failures_total",
		Help: "Total number of failed sign-in attempts",
	})
	SignupsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: prefix + "_signups_total",
		Help: "Total number of registered users",
	})
	LockTransitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_lock_transitions_total",
			Help: "Total number of lock status transitions",
		},
		[]string{"from", "to"},
	)
	LockAssignmentsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: prefix + "_lock_assignments_total",
		Help: "Total number of lock assignments",
	})
	WebsocketClients = promauto.NewGauge(prometheus.GaugeOpts{
		Name: prefix + "_websocket_clients",
		Help: "Currently connected websocket clients",
	})
}
