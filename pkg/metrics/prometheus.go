package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder records ephemeris provider call outcomes using Prometheus.
type Recorder struct {
	calls   *prometheus.CounterVec
	errors  *prometheus.CounterVec
	latency *prometheus.HistogramVec
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		calls: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "astrochart_provider_calls_total",
				Help: "Total number of ephemeris provider calls",
			},
			[]string{"op"},
		),
		errors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "astrochart_provider_errors_total",
				Help: "Total number of failed ephemeris provider calls",
			},
			[]string{"op"},
		),
		latency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "astrochart_provider_duration_seconds",
				Help:    "Duration of ephemeris provider calls in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"op"},
		),
	}
}

// RecordCall records one provider call and its latency in seconds.
func (r *Recorder) RecordCall(op string, seconds float64) {
	r.calls.WithLabelValues(op).Inc()
	r.latency.WithLabelValues(op).Observe(seconds)
}

// RecordError records a failed provider call.
func (r *Recorder) RecordError(op string) {
	r.errors.WithLabelValues(op).Inc()
}
