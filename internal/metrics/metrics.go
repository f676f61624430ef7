// Package metrics exposes prometheus collectors and the HTTP middleware
// that feeds them.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	requestDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency.",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		},
	)

	totalHTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "total_http_requests", Help: "HTTP requests by code and method."},
		[]string{"code", "method"},
	)

	totalHTTPRequestsToURI = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "total_http_requests_to_uri", Help: "HTTP requests by code, uri and method."},
		[]string{"code", "uri", "method"},
	)
)

func init() {
	prometheus.MustRegister(
		requestDuration,
		totalHTTPRequests,
		totalHTTPRequestsToURI,
	)
}

// Collect records per-request counters and latency. Scrapes of /metrics
// itself are not counted.
func Collect(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		defer func() {
			if r.URL.Path != "/metrics" {
				code := strconv.Itoa(ww.Status())
				totalHTTPRequests.WithLabelValues(code, r.Method).Inc()
				totalHTTPRequestsToURI.WithLabelValues(code, r.URL.Path, r.Method).Inc()
				requestDuration.Observe(time.Since(start).Seconds())
			}
		}()

		next.ServeHTTP(ww, r)
	})
}

// Handler returns the /metrics exposition handler.
func Handler() http.Handler { return promhttp.Handler() }
