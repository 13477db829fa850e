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

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Business metric names
const (
	MetricNameSelectionActions    = "selection_actions_total"
	MetricNameSelectionRejections = "selection_rejections_total"
	MetricNameCelebrations        = "celebrations_total"
	MetricNameGamesLoaded         = "games_loaded"
	MetricNameSSEClientsConnected = "sse_clients_connected"
	MetricNameEngineEvaluations   = "engine_evaluations_total"
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

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Business metric help text
const (
	HelpTextSelectionActions    = "Total number of completed session actions"
	HelpTextSelectionRejections = "Total number of refused selection toggles"
	HelpTextCelebrations        = "Total number of celebrations fired"
	HelpTextGamesLoaded         = "Number of games loaded from the tickets file"
	HelpTextSSEClientsConnected = "Current number of connected SSE clients"
	HelpTextEngineEvaluations   = "Total number of engine evaluations by cache outcome"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelType   = "type"
	LabelAction = "action"
	LabelReason = "reason"
	LabelTier   = "tier"
	LabelCache  = "cache"
)

// Values for the cache outcome label
const (
	CacheOutcomeHit  = "hit"
	CacheOutcomeMiss = "miss"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds. These buckets range from 1ms to 10s to capture various latency
// patterns: fast (1-10ms), normal (10-100ms), slow (100ms-1s), very slow (1-10s)
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgEventPayloadInvalid = "Event payload did not decode"
	LogMsgMetricsRecorded     = "Metrics recorded for event"
)
