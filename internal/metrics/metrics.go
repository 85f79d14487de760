package metrics

import (
	"strconv"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	// RequestDuration tracks HTTP request duration in seconds by method, route pattern, status.
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// RequestTotal counts HTTP requests by method, route pattern, status.
	RequestTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// AuthEventsTotal counts signup and login attempts by outcome status code.
	AuthEventsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_events_total",
			Help: "Signup and login attempts by event and response status",
		},
		[]string{"event", "status"},
	)

	// PostOpsTotal counts post operations (create, get, update, delete) by outcome status code.
	PostOpsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "post_operations_total",
			Help: "Post operations by operation and response status",
		},
		[]string{"op", "status"},
	)
)

// UnmatchedRoute labels requests that matched no route.
const UnmatchedRoute = "unmatched"

var initOnce sync.Once

func init() {
	initOnce.Do(func() {
		prometheus.MustRegister(RequestDuration, RequestTotal, AuthEventsTotal, PostOpsTotal)
	})
}

// RecordRequest records duration and count for an HTTP request. route is the matched
// route pattern (e.g. /api/v1/post/{postID}), never the raw path, so label values stay bounded.
func RecordRequest(method, route string, statusCode int, durationSeconds float64) {
	if route == "" {
		route = UnmatchedRoute
	}
	status := strconv.Itoa(statusCode)
	RequestDuration.WithLabelValues(method, route, status).Observe(durationSeconds)
	RequestTotal.WithLabelValues(method, route, status).Inc()
}

// IncAuthEvent counts one signup or login attempt answered with statusCode.
func IncAuthEvent(event string, statusCode int) {
	AuthEventsTotal.WithLabelValues(event, strconv.Itoa(statusCode)).Inc()
}

// IncPostOp counts one post operation answered with statusCode.
func IncPostOp(op string, statusCode int) {
	PostOpsTotal.WithLabelValues(op, strconv.Itoa(statusCode)).Inc()
}
