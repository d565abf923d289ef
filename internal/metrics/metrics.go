package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPResponseBytes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPResponseBytes,
			Help: HelpTextHTTPResponseBytes,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Catalog Metrics
var (
	CatalogOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCatalogOperations,
			Help: HelpTextCatalogOperations,
		},
		[]string{LabelOperation, LabelOutcome, LabelReason},
	)

	CatalogItems = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameCatalogItems,
			Help: HelpTextCatalogItems,
		},
	)

	CatalogRecipes = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameCatalogRecipes,
			Help: HelpTextCatalogRecipes,
		},
	)

	CatalogSavesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCatalogSaves,
			Help: HelpTextCatalogSaves,
		},
		[]string{LabelResult},
	)

	ProfitCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameProfitCacheHits,
			Help: HelpTextProfitCacheHits,
		},
	)

	ProfitCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameProfitCacheMisses,
			Help: HelpTextProfitCacheMisses,
		},
	)
)
