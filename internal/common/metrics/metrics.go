package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry holds the application collectors.
	Registry = prometheus.NewRegistry()

	httpInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "cafe",
			Subsystem: "http",
			Name:      "inflight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		},
	)

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "cafe",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "path", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "cafe",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms to ~5s
		},
		[]string{"method", "path"},
	)

	submissions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "cafe",
			Subsystem: "downstream",
			Name:      "submissions_total",
			Help:      "Records handed to the downstream, by kind and outcome.",
		},
		[]string{"kind", "outcome"},
	)
)

func init() {
	Registry.MustRegister(
		httpInFlight,
		httpRequests,
		httpDuration,
		submissions,
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		prometheus.NewGoCollector(),
	)
}

// Handler exposes the registry for scraping.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

func IncInFlight() { httpInFlight.Inc() }
func DecInFlight() { httpInFlight.Dec() }

func RecordHTTPRequest(method, path, status string, d time.Duration) {
	httpRequests.WithLabelValues(method, path, status).Inc()
	httpDuration.WithLabelValues(method, path).Observe(d.Seconds())
}

// RecordSubmission counts one downstream outcome: accepted, declined or error.
func RecordSubmission(kind, outcome string) {
	submissions.WithLabelValues(kind, outcome).Inc()
}
