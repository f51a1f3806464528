package middleware

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus collectors for the HTTP surface.
type Metrics struct {
	requestsTotal    *prometheus.CounterVec
	requestDuration  *prometheus.HistogramVec
	requestsInFlight prometheus.Gauge
}

// NewMetrics creates and registers the collectors.
func NewMetrics(namespace string) *Metrics {
	if namespace == "" {
		namespace = "partyland"
	}

	m := &Metrics{
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"method", "path", "status"},
		),
		requestsInFlight: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "http_requests_in_flight",
				Help:      "Number of HTTP requests currently being processed",
			},
		),
	}

	prometheus.MustRegister(m.requestsTotal, m.requestDuration, m.requestsInFlight)
	return m
}

// Middleware records request count, duration and in-flight gauge.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		m.requestsInFlight.Inc()
		defer m.requestsInFlight.Dec()

		wrapped := &statusWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(wrapped, r)

		status := strconv.Itoa(wrapped.statusCode)
		path := normalizePath(r.URL.Path)

		m.requestsTotal.WithLabelValues(r.Method, path, status).Inc()
		m.requestDuration.WithLabelValues(r.Method, path, status).Observe(time.Since(start).Seconds())
	})
}

// Handler returns the Prometheus scrape endpoint.
func (m *Metrics) Handler() http.Handler {
	return promhttp.Handler()
}

// normalizePath collapses dynamic path segments so label cardinality stays
// bounded.
func normalizePath(path string) string {
	switch {
	case strings.HasPrefix(path, "/api-proxy/"):
		return "/api-proxy/*"
	case strings.HasPrefix(path, "/api/products/") && path != "/api/products/":
		return "/api/products/:id"
	case strings.HasPrefix(path, "/api/cart/items/"):
		return "/api/cart/items/:id"
	case strings.HasPrefix(path, "/api/admin/payments/"):
		rest := strings.Trim(strings.TrimPrefix(path, "/api/admin/payments/"), "/")
		if rest == "" {
			return "/api/admin/payments"
		}
		if i := strings.IndexByte(rest, '/'); i >= 0 {
			return "/api/admin/payments/:id/" + rest[i+1:]
		}
		return "/api/admin/payments/:id"
	}
	return path
}
