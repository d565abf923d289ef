package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
	MetricNameHTTPResponseBytes    = "http_response_bytes_total"
)

// Catalog metric names
const (
	MetricNameCatalogOperations = "catalog_operations_total"
	MetricNameCatalogItems      = "catalog_items"
	MetricNameCatalogRecipes    = "catalog_recipes"
	MetricNameCatalogSaves      = "catalog_saves_total"
	MetricNameProfitCacheHits   = "profit_cache_hits_total"
	MetricNameProfitCacheMisses = "profit_cache_misses_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
	HelpTextHTTPResponseBytes    = "Total bytes written in HTTP response bodies"
)

// Catalog metric help text
const (
	HelpTextCatalogOperations = "Total number of catalog mutations by operation and outcome"
	HelpTextCatalogItems      = "Number of items in the loaded database"
	HelpTextCatalogRecipes    = "Number of recipes in the loaded database"
	HelpTextCatalogSaves      = "Total number of database saves by result"
	HelpTextProfitCacheHits   = "Total number of profit lookups served from cache"
	HelpTextProfitCacheMisses = "Total number of profit lookups computed"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod    = "method"
	LabelPath      = "path"
	LabelStatus    = "status"
	LabelOperation = "operation"
	LabelOutcome   = "outcome"
	LabelReason    = "reason"
	LabelResult    = "result"
)

// Label values
const (
	OutcomeOK       = "ok"
	OutcomeRejected = "rejected"
	ResultSuccess   = "success"
	ResultFailure   = "failure"
	PathUnmatched   = "unmatched"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
