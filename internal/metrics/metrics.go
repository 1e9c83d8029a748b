// Package metrics contains prometheus metrics of the service.
package metrics

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/Decentr-net/aegis/internal/service"
)

var intentsCounter = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "aegis_intents_total",
	Help: "The total number of applied intents by result.",
}, []string{"kind", "result"})

var intentDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "aegis_intent_duration_seconds",
	Help:    "A histogram of intent application latencies.",
	Buckets: prometheus.ExponentialBuckets(0.001, 2, 15),
}, []string{"kind"})

var reqCnt = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "aegis_http_requests_total",
	Help: "A counter for requests to the wrapped handler.",
}, []string{"code", "method", "path"})

var reqDur = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "aegis_http_request_duration_seconds",
	Help:    "A histogram of latencies for requests.",
	Buckets: prometheus.ExponentialBuckets(0.001, 2, 15),
}, []string{"code", "method", "path"})

var resSz = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "aegis_http_response_size_bytes",
	Help:    "A histogram of response sizes for requests.",
	Buckets: prometheus.ExponentialBuckets(100, 10, 8),
}, []string{"code", "method", "path"})

// ObserveIntent counts intent by its result.
func ObserveIntent(kind string, err error, d time.Duration) {
	intentsCounter.WithLabelValues(kind, result(err)).Inc()
	intentDuration.WithLabelValues(kind).Observe(d.Seconds())
}

func result(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, service.ErrNotFound):
		return "not_found"
	case errors.Is(err, service.ErrPermissionDenied):
		return "permission_denied"
	case errors.Is(err, service.ErrInvalidTransition):
		return "invalid_transition"
	case errors.Is(err, service.ErrInvalidRequest):
		return "invalid_request"
	case errors.Is(err, service.ErrAlreadyExists):
		return "already_exists"
	default:
		return "error"
	}
}

// Middleware collects http metrics labeled with chi route pattern.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		path := "unknown"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && len(rctx.RoutePatterns) > 0 {
			path = strings.Join(rctx.RoutePatterns, "")
		}

		if path == "/metrics" || path == "/health" {
			return
		}

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		code := strconv.Itoa(status)

		reqCnt.WithLabelValues(code, r.Method, path).Inc()
		reqDur.WithLabelValues(code, r.Method, path).Observe(time.Since(start).Seconds())
		resSz.WithLabelValues(code, r.Method, path).Observe(float64(ww.BytesWritten()))
	})
}
