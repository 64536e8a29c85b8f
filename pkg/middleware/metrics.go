package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const unmatchedRoute = "unmatched"

// Metrics counts requests by method, path and status and observes their
// latency. Paths that hit no route share one label.
func Metrics(requests *prometheus.CounterVec, duration *prometheus.HistogramVec) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			wrapped := wrap(w)

			next.ServeHTTP(wrapped, r)

			path := r.URL.Path
			if wrapped.statusCode == http.StatusNotFound || wrapped.statusCode == http.StatusMethodNotAllowed {
				path = unmatchedRoute
			}
			requests.WithLabelValues(r.Method, path, strconv.Itoa(wrapped.statusCode)).Inc()
			duration.WithLabelValues(r.Method, path).Observe(time.Since(start).Seconds())
		})
	}
}
