package monitoring

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

// Pipeline and HTTP metrics.
var (
	MatchesProcessedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "tracker_matches_processed_total",
		Help: "Matches that passed the novelty gate and were enriched",
	})

	DuplicateMatchesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "tracker_duplicate_matches_total",
		Help: "Matches skipped because their id was already in the ledger",
	})

	EvictionsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "tracker_ledger_evictions_total",
		Help: "Summaries evicted from the retention ledger",
	})

	EnrichedEventsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "tracker_enriched_events_total",
		Help: "Combat log events written after enrichment",
	})

	PollFailuresTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "tracker_poll_failures_total",
		Help: "Provider fetch failures by stage",
	}, []string{"stage"})

	HTTPRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "endpoint", "status_code"})

	HTTPRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "endpoint"})
)

// Metrics owns the registry both services expose.
type Metrics struct {
	registry *prometheus.Registry
}

// NewMetrics registers every metric on a fresh registry.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	registry.MustRegister(MatchesProcessedTotal)
	registry.MustRegister(DuplicateMatchesTotal)
	registry.MustRegister(EvictionsTotal)
	registry.MustRegister(EnrichedEventsTotal)
	registry.MustRegister(PollFailuresTotal)
	registry.MustRegister(HTTPRequestsTotal)
	registry.MustRegister(HTTPRequestDuration)

	logrus.Info("Prometheus metrics initialized")

	return &Metrics{registry: registry}
}

// Handler returns the scrape endpoint handler.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Middleware instruments gin requests.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		HTTPRequestsTotal.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			strconv.Itoa(c.Writer.Status()),
		).Inc()

		HTTPRequestDuration.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
		).Observe(time.Since(start).Seconds())
	}
}
