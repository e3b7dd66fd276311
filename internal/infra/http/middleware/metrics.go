package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	activeConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_active_connections",
			Help: "Number of active HTTP connections",
		},
	)

	leadsCaptured = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "leads_captured_total",
			Help: "Total number of leads captured",
		},
	)

	leadsSegmented = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "leads_segmented_total",
			Help: "Total number of lead segmentations, by resulting temperature",
		},
		[]string{"temperatura"},
	)

	messagesGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "messages_generated_total",
			Help: "Total number of nurture messages generated",
		},
		[]string{"canal", "objetivo"},
	)

	outreachErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "outreach_send_errors_total",
			Help: "Total number of failed outreach dispatches",
		},
		[]string{"canal"},
	)
)

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		activeConnections.Inc()
		defer activeConnections.Dec()

		rw := &responseWriter{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(rw.statusCode)

		httpRequestsTotal.WithLabelValues(r.Method, r.URL.Path, status).Inc()
		httpRequestDuration.WithLabelValues(r.Method, r.URL.Path).Observe(duration)
	})
}

func RecordLeadCaptured() {
	leadsCaptured.Inc()
}

func RecordSegmentation(temperatura string) {
	leadsSegmented.WithLabelValues(temperatura).Inc()
}

func RecordMessageGenerated(canal, objetivo string) {
	messagesGenerated.WithLabelValues(canal, objetivo).Inc()
}

func RecordOutreachError(canal string) {
	outreachErrors.WithLabelValues(canal).Inc()
}
