// internal/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "eventrix_http_requests_total",
			Help: "Total number of HTTP requests by route and status",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "eventrix_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	FilterEvaluations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "eventrix_filter_evaluations_total",
			Help: "Total number of product filter evaluations",
		},
		[]string{"source"},
	)

	FilterResultSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "eventrix_filter_result_size",
			Help:    "Number of products left after filtering",
			Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 250, 500},
		},
	)

	CacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "eventrix_cache_lookups_total",
			Help: "Cache lookups by cache and result",
		},
		[]string{"cache", "result"},
	)

	OrphanedFacetKeys = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "eventrix_sidebar_orphaned_keys_total",
			Help: "Facet keys saved without a matching category property",
		},
	)
)
