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

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Dice Metrics
var (
	RollsEvaluated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRollsEvaluated,
			Help: HelpTextRollsEvaluated,
		},
		[]string{LabelOutcome, LabelCritical},
	)

	DiceRolled = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameDiceRolled,
			Help: HelpTextDiceRolled,
		},
	)

	ParseErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameParseErrors,
			Help: HelpTextParseErrors,
		},
	)

	EntropyFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameEntropyFailures,
			Help: HelpTextEntropyFailures,
		},
	)

	TrivialRolls = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameTrivialRolls,
			Help: HelpTextTrivialRolls,
		},
	)

	SimulationIterations = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSimulationRuns,
			Help: HelpTextSimulationRuns,
		},
	)
)

// Streak Metrics
var (
	OutcomesClassified = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameOutcomesClassified,
			Help: HelpTextOutcomesClassified,
		},
		[]string{LabelKind},
	)

	StreakMerges = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameStreakMerges,
			Help: HelpTextStreakMerges,
		},
		[]string{LabelTrivial},
	)

	StreakRetractions = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameStreakRetractions,
			Help: HelpTextStreakRetractions,
		},
	)

	UnattributedMessages = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameUnattributed,
			Help: HelpTextUnattributed,
		},
	)

	TrivialCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameTrivialCacheHits,
			Help: HelpTextTrivialCacheHits,
		},
	)
)

// Discord Metrics
var (
	DiscordCommands = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameDiscordCommands,
			Help: HelpTextDiscordCommands,
		},
		[]string{LabelCommand},
	)
)
