package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	ChartLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "astrochart",
			Subsystem: "api",
			Name:      "latency_seconds",
			Help:      "Latency of chart endpoints",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)

	ChartErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "astrochart",
			Subsystem: "api",
			Name:      "errors_total",
			Help:      "Errors by chart endpoint",
		},
		[]string{"endpoint"},
	)

	CacheHits = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "astrochart",
			Subsystem: "api",
			Name:      "cache_hits_total",
			Help:      "Response cache hits by endpoint",
		},
		[]string{"endpoint"},
	)
)

func Register() {
	once.Do(func() {
		prometheus.MustRegister(ChartLatency, ChartErrors, CacheHits)
	})
}
