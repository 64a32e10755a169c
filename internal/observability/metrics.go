package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hightide_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"path", "code", "method"},
	)

	RequestDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "hightide_request_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: prometheus.DefBuckets,
		},
	)

	BookingSubmissions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hightide_booking_submissions_total",
			Help: "Booking submissions by outcome",
		},
		[]string{"outcome"},
	)

	LiveBookingSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "hightide_booking_sessions",
			Help: "Live booking sessions held in memory",
		},
	)
)

// Submission outcomes.
const (
	OutcomeConfirmed = "confirmed"
	OutcomeInvalid   = "invalid"
	OutcomeFailed    = "failed"
)
