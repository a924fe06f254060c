// Package metrics exposes Prometheus counters for the poll loop and serves
// them over HTTP.
package metrics

import (
	"github.com/genricoloni/mprisence/internal/domain"
	"github.com/genricoloni/mprisence/internal/presence"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "mprisence"

// Result label for candidates that passed extraction and filtering
const ResultAccepted = "accepted"

// Metrics holds the collectors of the daemon. Each instance owns its registry
// so several can coexist in one process.
type Metrics struct {
	registry *prometheus.Registry

	TicksTotal         prometheus.Counter
	CandidatesTotal    *prometheus.CounterVec
	SelectionsTotal    *prometheus.CounterVec
	PublishErrorsTotal *prometheus.CounterVec
	ClearsTotal        prometheus.Counter
}

// NewMetrics creates and registers the collectors
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		TicksTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "ticks_total",
				Help:      "Total number of poll loop iterations",
			},
		),
		CandidatesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "candidates_total",
				Help:      "Players evaluated by the selector, by outcome",
			},
			[]string{"result"},
		),
		SelectionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "selections_total",
				Help:      "Snapshots selected for publishing, by playback status",
			},
			[]string{"status"},
		),
		PublishErrorsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "publish_errors_total",
				Help:      "Failed presence updates, by operation",
			},
			[]string{"op"},
		),
		ClearsTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "clears_total",
				Help:      "Total number of presence clears sent",
			},
		),
	}

	m.registry.MustRegister(
		m.TicksTotal,
		m.CandidatesTotal,
		m.SelectionsTotal,
		m.PublishErrorsTotal,
		m.ClearsTotal,
	)
	return m
}

// Registry returns the registry the collectors are registered with
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// RecordTick counts one poll loop iteration
func (m *Metrics) RecordTick() {
	m.TicksTotal.Inc()
}

// ObserveCandidate implements presence.CandidateObserver
func (m *Metrics) ObserveCandidate(_ string, err error) {
	result := ResultAccepted
	if err != nil {
		result = presence.RejectReasonOf(err)
	}
	m.CandidatesTotal.WithLabelValues(result).Inc()
}

// RecordSelection counts a snapshot picked for publishing
func (m *Metrics) RecordSelection(status domain.PlaybackStatus) {
	m.SelectionsTotal.WithLabelValues(string(status)).Inc()
}

// RecordPublishError counts a failed sink call; op is "set" or "clear"
func (m *Metrics) RecordPublishError(op string) {
	m.PublishErrorsTotal.WithLabelValues(op).Inc()
}

// RecordClear counts a presence clear that reached the sink
func (m *Metrics) RecordClear() {
	m.ClearsTotal.Inc()
}

var _ presence.CandidateObserver = (*Metrics)(nil)
