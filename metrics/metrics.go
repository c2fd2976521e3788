// Package metrics provides Prometheus collectors for enum resolution and trigger
// dispatch. A nil *Collector is valid and records nothing.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Collector holds the toolcore metrics.
type Collector struct {
	// Enum cache
	EnumResolutions    *prometheus.CounterVec
	EnumMisses         *prometheus.CounterVec
	EnumStaleEntries   *prometheus.CounterVec
	CatalogueRefreshes *prometheus.CounterVec
	FetchDuration      *prometheus.HistogramVec

	// Trigger dispatch
	TriggerEvents   prometheus.Counter
	TriggerHandlers *prometheus.CounterVec
	TriggerSkipped  prometheus.Counter
}

// New registers the collectors with the default registerer.
func New() *Collector {
	return NewWithRegistry(prometheus.DefaultRegisterer)
}

// NewWithRegistry registers the collectors with reg.
func NewWithRegistry(reg prometheus.Registerer) *Collector {
	factory := promauto.With(reg)
	return &Collector{
		EnumResolutions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "toolcore",
				Name:      "enum_resolutions_total",
				Help:      "Enum slugs resolved, by namespace and source",
			},
			[]string{"namespace", "source"},
		),
		EnumMisses: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "toolcore",
				Name:      "enum_misses_total",
				Help:      "Enum slugs that could not be resolved",
			},
			[]string{"namespace"},
		),
		EnumStaleEntries: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "toolcore",
				Name:      "enum_stale_entries_total",
				Help:      "Disk cache entries deleted for failing their metadata schema",
			},
			[]string{"namespace"},
		),
		CatalogueRefreshes: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "toolcore",
				Name:      "enum_catalogue_refreshes_total",
				Help:      "Full catalogue refreshes, by namespace and result",
			},
			[]string{"namespace", "result"},
		),
		FetchDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "toolcore",
				Name:      "enum_fetch_duration_seconds",
				Help:      "Remote enum fetch duration in seconds",
				Buckets:   []float64{.01, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"namespace"},
		),
		TriggerEvents: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: "toolcore",
				Name:      "trigger_events_total",
				Help:      "Trigger events dispatched",
			},
		),
		TriggerHandlers: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "toolcore",
				Name:      "trigger_handler_calls_total",
				Help:      "Trigger handler invocations, by result",
			},
			[]string{"result"},
		),
		TriggerSkipped: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: "toolcore",
				Name:      "trigger_registrations_skipped_total",
				Help:      "Registrations skipped because their filter did not match",
			},
		),
	}
}

// RecordResolution counts a successful enum resolution.
func (c *Collector) RecordResolution(namespace, source string) {
	if c == nil {
		return
	}
	c.EnumResolutions.WithLabelValues(namespace, source).Inc()
}

// RecordMiss counts an unresolved enum slug.
func (c *Collector) RecordMiss(namespace string) {
	if c == nil {
		return
	}
	c.EnumMisses.WithLabelValues(namespace).Inc()
}

// RecordStale counts a deleted stale cache entry.
func (c *Collector) RecordStale(namespace string) {
	if c == nil {
		return
	}
	c.EnumStaleEntries.WithLabelValues(namespace).Inc()
}

// RecordRefresh counts a catalogue refresh.
func (c *Collector) RecordRefresh(namespace string, err error) {
	if c == nil {
		return
	}
	c.CatalogueRefreshes.WithLabelValues(namespace, result(err)).Inc()
}

// ObserveFetch records the duration of a remote fetch.
func (c *Collector) ObserveFetch(namespace string, seconds float64) {
	if c == nil {
		return
	}
	c.FetchDuration.WithLabelValues(namespace).Observe(seconds)
}

// RecordEvent counts a dispatched trigger event.
func (c *Collector) RecordEvent() {
	if c == nil {
		return
	}
	c.TriggerEvents.Inc()
}

// RecordHandler counts a handler invocation.
func (c *Collector) RecordHandler(err error) {
	if c == nil {
		return
	}
	c.TriggerHandlers.WithLabelValues(result(err)).Inc()
}

// RecordSkip counts a registration whose filter did not match.
func (c *Collector) RecordSkip() {
	if c == nil {
		return
	}
	c.TriggerSkipped.Inc()
}

func result(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
