package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// TrackingEventsTotal counts tracking hits by event and whether they advanced the funnel
	TrackingEventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "phishsim_tracking_events_total",
			Help: "Tracking hits by event type and outcome",
		},
		[]string{"event", "outcome"}, // outcome: first, repeat, unknown, error
	)

	// RateLimitedTotal counts requests rejected by a per-IP limiter
	RateLimitedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "phishsim_rate_limited_total",
			Help: "Requests rejected by rate limiting",
		},
		[]string{"limiter"},
	)

	// HTTPRequestDuration tracks API latency by route template
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "phishsim_http_request_duration_seconds",
			Help: "Duration of HTTP requests in seconds",
			Buckets: []float64{
				0.005, // 5ms
				0.01,  // 10ms
				0.025, // 25ms
				0.05,  // 50ms
				0.1,   // 100ms
				0.25,  // 250ms
				0.5,   // 500ms
				1.0,   // 1s
				2.5,   // 2.5s
				5.0,   // 5s
			},
		},
		[]string{"method", "route", "status"},
	)
)

// Tracking outcomes
const (
	OutcomeFirst   = "first"
	OutcomeRepeat  = "repeat"
	OutcomeUnknown = "unknown"
	OutcomeError   = "error"
)

// RecordTrackingEvent counts one tracking hit
func RecordTrackingEvent(event, outcome string) {
	TrackingEventsTotal.WithLabelValues(event, outcome).Inc()
}

// RecordRateLimited counts one rejected request
func RecordRateLimited(limiter string) {
	RateLimitedTotal.WithLabelValues(limiter).Inc()
}

// Middleware observes request latency labelled by the matched route template
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		HTTPRequestDuration.
			WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).
			Observe(time.Since(start).Seconds())
	}
}
