package metrics

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gateway_http_requests_total",
			Help: "Total number of storefront HTTP requests.",
		},
		[]string{"code", "method", "path"},
	)
	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gateway_http_request_duration_seconds",
			Help:    "Duration of storefront HTTP requests in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)
	requestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "gateway_http_requests_in_flight",
			Help: "Current number of storefront HTTP requests being processed.",
		},
	)

	upstreamRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gateway_upstream_requests_total",
			Help: "Total number of commerce API calls, by resource and status code.",
		},
		[]string{"resource", "code"},
	)
	upstreamDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gateway_upstream_request_duration_seconds",
			Help:    "Duration of commerce API calls in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"resource"},
	)
)

func init() {
	if err := prometheus.Register(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{})); err != nil {
		slog.Debug("ProcessCollector registration skipped (likely already registered)",
			slog.String("error", err.Error()))
	}

	if err := prometheus.Register(collectors.NewGoCollector()); err != nil {
		slog.Debug("GoCollector registration skipped (likely already registered)",
			slog.String("error", err.Error()))
	}
}

// ObserveUpstream records one commerce API call. A transport failure that
// never produced a response is recorded with code 0.
func ObserveUpstream(resource string, statusCode int, duration time.Duration) {
	upstreamRequestsTotal.WithLabelValues(resource, strconv.Itoa(statusCode)).Inc()
	upstreamDuration.WithLabelValues(resource).Observe(duration.Seconds())
}

// wrapper around http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{w, http.StatusOK}
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// routeLabel turns a registered mux pattern ("GET /products/{id}") into the
// path label. The registered pattern keeps ids as placeholders, so the label
// set stays bounded; requests that match no route share one label.
func routeLabel(pattern string) string {
	if pattern == "" {
		return "unmatched"
	}

	if i := strings.IndexByte(pattern, ' '); i >= 0 {
		return pattern[i+1:]
	}

	return pattern
}

// Middleware instruments the mux itself rather than wrapping an opaque
// handler: the route pattern is only known to the mux, so it is looked up
// here before dispatch.
func Middleware(mux *http.ServeMux) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		start := time.Now()
		requestsInFlight.Inc()

		rw := newResponseWriter(w)

		_, pattern := mux.Handler(r)
		path := routeLabel(pattern)

		defer func() {
			requestsTotal.WithLabelValues(strconv.Itoa(rw.statusCode), r.Method, path).Inc()
			requestDuration.WithLabelValues(r.Method, path).Observe(time.Since(start).Seconds())
			requestsInFlight.Dec()
		}()

		mux.ServeHTTP(rw, r)
	})
}

// http.Handler for the Prometheus /metrics endpoint
func Handler() http.Handler {
	return promhttp.Handler()
}
