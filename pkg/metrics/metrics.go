package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Collector provides application metrics collection
type Collector struct {
	// HTTP Metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Prediction Metrics
	PredictionsTotal        prometheus.Counter
	PredictionDuration      prometheus.Histogram
	PredictionErrorsTotal   *prometheus.CounterVec
	PredictedYield          prometheus.Histogram
	EncodeErrorsTotal       *prometheus.CounterVec

	// Artifact Metrics
	ArtifactLoadDuration    *prometheus.HistogramVec
	ArtifactLoadErrorsTotal *prometheus.CounterVec
}

// NewCollector creates a new metrics collector
func NewCollector(namespace string) *Collector {
	return &Collector{
		HTTPRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests by endpoint, method, and status",
			},
			[]string{"endpoint", "method", "status"},
		),

		HTTPRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   []float64{0.001, 0.005, 0.01, 0.02, 0.05, 0.1, 0.2, 0.5, 1.0, 2.0, 5.0},
			},
			[]string{"endpoint"},
		),

		PredictionsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "predictions_total",
				Help:      "Total number of successful yield predictions",
			},
		),

		PredictionDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "prediction_duration_seconds",
				Help:      "Duration of the encode-scale-predict pipeline in seconds",
				Buckets:   []float64{0.0001, 0.0005, 0.001, 0.002, 0.005, 0.01, 0.02, 0.05},
			},
		),

		PredictionErrorsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "prediction_errors_total",
				Help:      "Total number of prediction errors by type",
			},
			[]string{"error_type"},
		),

		PredictedYield: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "predicted_yield_hg_per_ha",
				Help:      "Distribution of predicted crop yields in hg/ha",
				Buckets:   []float64{1000, 5000, 10000, 25000, 50000, 100000, 250000, 500000},
			},
		),

		EncodeErrorsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "encode_errors_total",
				Help:      "Total number of category encoding failures by encoder",
			},
			[]string{"encoder"},
		),

		ArtifactLoadDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "artifact_load_duration_seconds",
				Help:      "Duration of artifact deserialization by artifact",
				Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0},
			},
			[]string{"artifact"},
		),

		ArtifactLoadErrorsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "artifact_load_errors_total",
				Help:      "Total number of artifact load failures by artifact",
			},
			[]string{"artifact"},
		),
	}
}

// Timer provides timing functionality for operations
type Timer struct {
	start    time.Time
	observer prometheus.Observer
}

// NewTimer creates a new timer
func (c *Collector) NewTimer(histogram prometheus.Observer) *Timer {
	return &Timer{
		start:    time.Now(),
		observer: histogram,
	}
}

// ObserveDuration records the elapsed time since timer creation
func (t *Timer) ObserveDuration() time.Duration {
	duration := time.Since(t.start)
	if t.observer != nil {
		t.observer.Observe(duration.Seconds())
	}
	return duration
}

// RecordHTTPRequest increments the HTTP request counter
func (c *Collector) RecordHTTPRequest(endpoint, method, status string) {
	c.HTTPRequestsTotal.WithLabelValues(endpoint, method, status).Inc()
}

// RecordPrediction records a successful prediction and its value
func (c *Collector) RecordPrediction(yield float64) {
	c.PredictionsTotal.Inc()
	c.PredictedYield.Observe(yield)
}

// RecordPredictionError increments the prediction error counter
func (c *Collector) RecordPredictionError(errorType string) {
	c.PredictionErrorsTotal.WithLabelValues(errorType).Inc()
}

// RecordEncodeError increments the encode error counter
func (c *Collector) RecordEncodeError(encoder string) {
	c.EncodeErrorsTotal.WithLabelValues(encoder).Inc()
}

// RecordArtifactLoadError increments the artifact load error counter
func (c *Collector) RecordArtifactLoadError(artifact string) {
	c.ArtifactLoadErrorsTotal.WithLabelValues(artifact).Inc()
}
