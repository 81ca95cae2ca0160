package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP metrics
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "freelanceshield",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "freelanceshield",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path", "status"},
	)

	httpRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "freelanceshield",
			Subsystem: "http",
			Name:      "requests_in_flight",
			Help:      "Number of HTTP requests currently being served",
		},
	)

	// Review pipeline metrics
	ReviewsCompleted = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "freelanceshield",
			Subsystem: "review",
			Name:      "completed_total",
			Help:      "Total number of successfully completed contract reviews",
		},
	)

	AnalysisFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "freelanceshield",
			Subsystem: "review",
			Name:      "analysis_failures_total",
			Help:      "Total number of contract analyses that failed upstream",
		},
	)

	analysisDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "freelanceshield",
			Subsystem: "review",
			Name:      "analysis_duration_seconds",
			Help:      "Duration of contract analysis calls in seconds",
			Buckets:   []float64{1, 2.5, 5, 10, 20, 30, 60, 120},
		},
	)

	extractionFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "freelanceshield",
			Subsystem: "pdf",
			Name:      "extraction_failures_total",
			Help:      "Total number of PDF extraction failures",
		},
		[]string{"reason"},
	)

	// Billing metrics
	webhookEvents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "freelanceshield",
			Subsystem: "billing",
			Name:      "webhook_events_total",
			Help:      "Total number of billing webhook events processed",
		},
		[]string{"type", "status"},
	)

	subscribersByPlan = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "freelanceshield",
			Subsystem: "billing",
			Name:      "subscribers_count",
			Help:      "Number of subscribers by plan",
		},
		[]string{"plan"},
	)
)

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// Middleware returns a middleware that records Prometheus metrics
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		httpRequestsInFlight.Inc()
		defer httpRequestsInFlight.Dec()

		wrapped := &responseWriter{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		next.ServeHTTP(wrapped, r)

		duration := time.Since(start).Seconds()

		// Get route pattern from chi
		routePattern := chi.RouteContext(r.Context()).RoutePattern()
		if routePattern == "" {
			routePattern = "unknown"
		}

		status := strconv.Itoa(wrapped.statusCode)

		httpRequestsTotal.WithLabelValues(r.Method, routePattern, status).Inc()
		httpRequestDuration.WithLabelValues(r.Method, routePattern, status).Observe(duration)
	})
}

// Handler returns the Prometheus metrics HTTP handler
func Handler() http.Handler {
	return promhttp.Handler()
}

// RecordAnalysisDuration records how long a model analysis call took
func RecordAnalysisDuration(duration time.Duration) {
	analysisDuration.Observe(duration.Seconds())
}

// RecordExtractionFailure records a PDF extraction failure by reason
func RecordExtractionFailure(reason string) {
	extractionFailures.WithLabelValues(reason).Inc()
}

// RecordWebhookEvent records a processed billing webhook event
func RecordWebhookEvent(eventType, status string) {
	webhookEvents.WithLabelValues(eventType, status).Inc()
}

// SetSubscribersCount sets the gauge for subscribers on a plan
func SetSubscribersCount(plan string, count float64) {
	subscribersByPlan.WithLabelValues(plan).Set(count)
}
