package middleware

import (
	"net/http"
	"strconv"
	"time"

	"crop-yield-platform/pkg/logging"
	"crop-yield-platform/pkg/metrics"
)

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// AccessLog logs every HTTP request with method, path, status, and duration,
// and records the request counter metric
func AccessLog(logger *logging.StructuredLogger, metricsCollector *metrics.Collector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(rw, r)

			duration := time.Since(start)
			metricsCollector.RecordHTTPRequest(r.URL.Path, r.Method, strconv.Itoa(rw.statusCode))
			metricsCollector.HTTPRequestDuration.WithLabelValues(r.URL.Path).Observe(duration.Seconds())

			logger.Info(r.Context(), "[HTTP_REQUEST] Request handled", logging.Fields{
				"method":      r.Method,
				"path":        r.URL.Path,
				"status":      rw.statusCode,
				"duration_ms": duration.Milliseconds(),
				"remote_addr": r.RemoteAddr,
			})
		})
	}
}
