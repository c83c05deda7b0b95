package middleware

import (
	"net/http"
	"regexp"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency grouped by method, route and status.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route", "status"})

	httpRequestsInFlight = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "http_requests_in_flight",
		Help: "HTTP requests currently being served.",
	})

	reObjectIDSegment = regexp.MustCompile(`/[0-9a-fA-F]{24}(/|$)`)
)

// Metrics records request latency. Object ids in the path are folded into
// ":id" to keep the route label bounded.
func Metrics() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			httpRequestsInFlight.Inc()
			defer httpRequestsInFlight.Dec()

			wrapped := wrapResponseWriter(w)
			next.ServeHTTP(wrapped, r)

			httpRequestDuration.WithLabelValues(
				r.Method,
				routeLabel(r.URL.Path),
				strconv.Itoa(wrapped.statusCode),
			).Observe(time.Since(start).Seconds())
		})
	}
}

func routeLabel(path string) string {
	return reObjectIDSegment.ReplaceAllString(path, "/:id$1")
}
