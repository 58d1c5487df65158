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

// Dice metric names
const (
	MetricNameRollsEvaluated  = "dice_rolls_evaluated_total"
	MetricNameDiceRolled      = "dice_rolled_total"
	MetricNameParseErrors     = "dice_parse_errors_total"
	MetricNameEntropyFailures = "dice_entropy_failures_total"
	MetricNameTrivialRolls    = "dice_trivial_rolls_total"
	MetricNameSimulationRuns  = "dice_simulation_iterations_total"
)

// Streak metric names
const (
	MetricNameOutcomesClassified = "streak_outcomes_classified_total"
	MetricNameStreakMerges       = "streak_merges_total"
	MetricNameStreakRetractions  = "streak_retractions_total"
	MetricNameUnattributed       = "streak_unattributed_messages_total"
	MetricNameTrivialCacheHits   = "streak_trivial_cache_hits_total"
)

// Discord metric names
const (
	MetricNameDiscordCommands = "discord_commands_total"
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

// Dice metric help text
const (
	HelpTextRollsEvaluated  = "Total number of dice expressions evaluated, by comparison outcome and critical tier"
	HelpTextDiceRolled      = "Total number of individual dice rolled"
	HelpTextParseErrors     = "Total number of rejected dice expressions"
	HelpTextEntropyFailures = "Total number of rolls aborted because the entropy source failed"
	HelpTextTrivialRolls    = "Total number of rolls whose comparison was decided before rolling"
	HelpTextSimulationRuns  = "Total number of Monte-Carlo iterations executed"
)

// Streak metric help text
const (
	HelpTextOutcomesClassified = "Total number of outcomes recovered from rendered messages, by kind"
	HelpTextStreakMerges       = "Total number of streak merges, by whether the delta was trivial"
	HelpTextStreakRetractions  = "Total number of streak retractions"
	HelpTextUnattributed       = "Total number of messages discarded for lack of an author"
	HelpTextTrivialCacheHits   = "Total number of aggregations short-circuited by the trivial cache"
)

// Discord metric help text
const (
	HelpTextDiscordCommands = "Total number of Discord slash commands handled"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod   = "method"
	LabelPath     = "path"
	LabelStatus   = "status"
	LabelOutcome  = "outcome"
	LabelCritical = "critical"
	LabelKind     = "kind"
	LabelTrivial  = "trivial"
	LabelCommand  = "command"
)

// Outcome kinds used with LabelKind
const (
	KindSuccess         = "success"
	KindFailure         = "failure"
	KindCriticalSuccess = "critical_success"
	KindCriticalFailure = "critical_failure"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// UnmatchedRoute labels requests that did not match a chi route
const UnmatchedRoute = "unmatched"
