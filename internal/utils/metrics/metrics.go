package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	VisionAnalysisTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vision_analysis_total",
			Help: "Meal photo analysis calls by outcome.",
		},
		[]string{"outcome"}, // ok, fallback, error
	)

	StatsCacheTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stats_cache_total",
			Help: "Stats response cache lookups by result.",
		},
		[]string{"result"}, // hit, miss
	)
)

func Register() {
	prometheus.MustRegister(
		HTTPRequestDuration,
		VisionAnalysisTotal,
		StatsCacheTotal,
	)
}
