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

// Custom Item Metrics
var (
	ItemUses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemUses,
			Help: HelpTextItemUses,
		},
		[]string{LabelItem},
	)

	ItemEffectFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemEffectFailures,
			Help: HelpTextItemEffectFailures,
		},
		[]string{LabelItem},
	)

	CooldownRejections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCooldownRejections,
			Help: HelpTextCooldownRejections,
		},
		[]string{LabelItem},
	)

	MetadataUnavailable = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameMetadataUnavailable,
			Help: HelpTextMetadataUnavailable,
		},
		[]string{LabelMaterial},
	)

	ItemsRegistered = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameItemsRegistered,
			Help: HelpTextItemsRegistered,
		},
	)

	UnrecognizedDispatches = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameUnrecognizedDispatches,
			Help: HelpTextUnrecognizedDispatches,
		},
	)
)
