package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Custom item metric names
const (
	MetricNameItemUses               = "custom_item_uses_total"
	MetricNameItemEffectFailures     = "custom_item_effect_failures_total"
	MetricNameCooldownRejections     = "custom_item_cooldown_rejections_total"
	MetricNameMetadataUnavailable    = "custom_item_metadata_unavailable_total"
	MetricNameItemsRegistered        = "custom_items_registered"
	MetricNameUnrecognizedDispatches = "custom_item_unrecognized_dispatches_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Custom item metric help text
const (
	HelpTextItemUses               = "Total number of successful custom item ability uses"
	HelpTextItemEffectFailures     = "Total number of ability uses whose effect failed"
	HelpTextCooldownRejections     = "Total number of ability uses rejected by cooldown"
	HelpTextMetadataUnavailable    = "Total number of item builds without a metadata handle"
	HelpTextItemsRegistered        = "Number of custom items currently registered"
	HelpTextUnrecognizedDispatches = "Total number of dispatched stacks that were not custom items"
)

// ============================================================================
// Label Names
// ============================================================================

const (
	LabelMethod   = "method"
	LabelPath     = "path"
	LabelStatus   = "status"
	LabelItem     = "item"
	LabelMaterial = "material"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets are tuned for an in-memory catalog endpoint
var HTTPLatencyBuckets = []float64{.0005, .001, .005, .01, .025, .05, .1, .25, .5, 1}
