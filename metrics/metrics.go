// Package metrics provides Prometheus metrics for the killboard poller.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Filter reasons recorded on EventsFiltered
const (
	FilterReasonStale     = "stale"
	FilterReasonDuplicate = "duplicate"
	FilterReasonMalformed = "malformed"
)

// Manager holds all Prometheus collectors for the poller
type Manager struct {
	registry *prometheus.Registry

	TicksStarted         prometheus.Counter
	TicksAborted         prometheus.Counter
	TickDuration         prometheus.Histogram
	RosterSize           prometheus.Gauge
	EventsAdmitted       prometheus.Counter
	EventsFiltered       *prometheus.CounterVec
	MemberFetchErrors    prometheus.Counter
	OccurrencesPersisted prometheus.Counter
	NotifyFailures       prometheus.Counter
	SeenKeys             prometheus.Gauge
}

// NewManager creates a metrics manager with its own registry
func NewManager() *Manager {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	m := &Manager{
		registry: registry,
		TicksStarted: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "killboard",
			Subsystem: "poller",
			Name:      "ticks_started_total",
			Help:      "Number of poll ticks started.",
		}),
		TicksAborted: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "killboard",
			Subsystem: "poller",
			Name:      "ticks_aborted_total",
			Help:      "Number of poll ticks aborted before processing members.",
		}),
		TickDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "killboard",
			Subsystem: "poller",
			Name:      "tick_duration_seconds",
			Help:      "Duration of completed poll ticks.",
			Buckets:   prometheus.DefBuckets,
		}),
		RosterSize: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "killboard",
			Subsystem: "poller",
			Name:      "roster_size",
			Help:      "Member count of the tracked guild at the last roster refresh.",
		}),
		EventsAdmitted: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "killboard",
			Subsystem: "poller",
			Name:      "events_admitted_total",
			Help:      "Number of events that passed the admission filter.",
		}),
		EventsFiltered: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "killboard",
			Subsystem: "poller",
			Name:      "events_filtered_total",
			Help:      "Number of events discarded by the admission filter.",
		}, []string{"reason"}),
		MemberFetchErrors: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "killboard",
			Subsystem: "poller",
			Name:      "member_fetch_errors_total",
			Help:      "Number of per-member event fetches that failed.",
		}),
		OccurrencesPersisted: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "killboard",
			Subsystem: "poller",
			Name:      "occurrences_persisted_total",
			Help:      "Number of kill/death occurrences newly stored.",
		}),
		NotifyFailures: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "killboard",
			Subsystem: "poller",
			Name:      "notify_failures_total",
			Help:      "Number of notification sends that failed.",
		}),
		SeenKeys: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "killboard",
			Subsystem: "poller",
			Name:      "seen_keys",
			Help:      "Current size of the in-memory processed-event key set.",
		}),
	}

	return m
}

// Handler returns an HTTP handler exposing the registry
func (m *Manager) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
