// Package metrics provides Prometheus metrics instrumentation.
package metrics

import (
	"github.com/matheus3301/chatters/internal/chat"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// EventsTotal counts raw events drained per backend and source (live, history).
	EventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chatters_events_total",
			Help: "Raw backend events drained",
		},
		[]string{"backend", "source"},
	)

	// MalformedTotal counts events the normalizer dropped.
	MalformedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chatters_malformed_events_total",
			Help: "Raw events dropped by the normalizer",
		},
		[]string{"backend"},
	)

	// MutationsTotal counts applied mutations by kind and result.
	MutationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chatters_mutations_total",
			Help: "Mutations applied to the conversation store",
		},
		[]string{"backend", "kind", "result"},
	)

	// BackendPhase is 1 for the current phase of each backend and 0 otherwise.
	BackendPhase = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "chatters_backend_phase",
			Help: "Current connection phase per backend",
		},
		[]string{"backend", "phase"},
	)

	// ReconnectsTotal counts reconnect attempts.
	ReconnectsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chatters_reconnects_total",
			Help: "Reconnect attempts per backend",
		},
		[]string{"backend"},
	)

	// BackfillPages tracks history pages fetched.
	BackfillPages = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chatters_backfill_pages_total",
			Help: "History pages fetched during backfill",
		},
		[]string{"backend"},
	)

	// BackfillDuration tracks how long a full backfill took.
	BackfillDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "chatters_backfill_duration_seconds",
			Help:    "Backfill duration in seconds",
			Buckets: []float64{.1, .5, 1, 2.5, 5, 10, 30, 60, 120, 300},
		},
		[]string{"backend", "status"},
	)

	// SendsTotal counts send outcomes.
	SendsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chatters_sends_total",
			Help: "Outgoing messages by outcome",
		},
		[]string{"backend", "outcome"},
	)

	// PendingSends tracks sends awaiting an outcome.
	PendingSends = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "chatters_pending_sends",
			Help: "Sends awaiting an outcome event",
		},
		[]string{"backend"},
	)

	// ArchiveRecords counts store changes written to the archive.
	ArchiveRecords = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chatters_archive_records_total",
			Help: "Store changes written to the archive",
		},
		[]string{"result"},
	)

	// ParkedUpdates counts updates parked until their message arrives.
	ParkedUpdates = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chatters_parked_updates_total",
			Help: "Updates that arrived before their message",
		},
		[]string{"backend"},
	)
)

var phases = []chat.Phase{chat.Disconnected, chat.Connecting, chat.SyncingHistory, chat.Live, chat.Degraded}

// RecordPhase sets the phase gauge of a backend.
func RecordPhase(backend chat.BackendID, current chat.Phase) {
	for _, p := range phases {
		v := 0.0
		if p == current {
			v = 1
		}
		BackendPhase.WithLabelValues(string(backend), string(p)).Set(v)
	}
}

// RecordMutation records the result of applying a mutation.
func RecordMutation(backend chat.BackendID, kind, result string) {
	MutationsTotal.WithLabelValues(string(backend), kind, result).Inc()
}

// ForgetBackend drops every series of a removed backend.
func ForgetBackend(backend chat.BackendID) {
	labels := prometheus.Labels{"backend": string(backend)}
	for _, vec := range []*prometheus.MetricVec{
		EventsTotal.MetricVec, MalformedTotal.MetricVec, MutationsTotal.MetricVec,
		BackendPhase.MetricVec, ReconnectsTotal.MetricVec, BackfillPages.MetricVec,
		BackfillDuration.MetricVec, SendsTotal.MetricVec, PendingSends.MetricVec,
		ParkedUpdates.MetricVec,
	} {
		vec.DeletePartialMatch(labels)
	}
}
