package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	analysesTotal *prometheus.CounterVec
	errorsTotal   *prometheus.CounterVec
	modelAccuracy prometheus.Gauge
	latency       *prometheus.HistogramVec
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		analysesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "alpha_analyses_total",
				Help: "Total number of completed symbol analyses",
			},
			[]string{"signal", "source"},
		),
		errorsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "alpha_errors_total",
				Help: "Total number of errors encountered",
			},
			[]string{"type"},
		),
		modelAccuracy: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "alpha_model_accuracy",
				Help: "Held-out accuracy of the last trained model",
			},
		),
		latency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "alpha_operation_duration_seconds",
				Help:    "Duration of operations in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
	}
}

// RecordAnalysis records a completed analysis by signal and source.
func (r *Recorder) RecordAnalysis(signal, source string) {
	r.analysesTotal.WithLabelValues(signal, source).Inc()
}

// RecordError records an error occurrence.
func (r *Recorder) RecordError(kind string) {
	r.errorsTotal.WithLabelValues(kind).Inc()
}

// RecordModelAccuracy records the last training run's accuracy.
func (r *Recorder) RecordModelAccuracy(accuracy float64) {
	r.modelAccuracy.Set(accuracy)
}

// RecordLatency records operation latency in seconds.
func (r *Recorder) RecordLatency(op string, seconds float64) {
	r.latency.WithLabelValues(op).Observe(seconds)
}
