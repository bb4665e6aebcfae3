package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

var Module = fx.Module("metrics",
	fx.Provide(NewRegistry),
	fx.Provide(New),
)

// Metrics exposes application-level instruments.
type Metrics struct {
	entriesDrafted   *prometheus.CounterVec
	entriesPosted    prometheus.Counter
	pipelineFailures *prometheus.CounterVec
	statementsServed *prometheus.CounterVec
}

func NewRegistry() *prometheus.Registry {
	return prometheus.NewRegistry()
}

// New configures the domain metrics instruments.
func New(reg *prometheus.Registry) (*Metrics, error) {
	m := &Metrics{
		entriesDrafted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "munimji_entries_drafted_total",
			Help: "Journal entries drafted by the authoring pipeline, by resulting status.",
		}, []string{"status"}),
		entriesPosted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "munimji_entries_posted_total",
			Help: "Journal entries posted to the books.",
		}),
		pipelineFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "munimji_pipeline_failures_total",
			Help: "Authoring pipeline failures, by stage.",
		}, []string{"stage"}),
		statementsServed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "munimji_statements_total",
			Help: "Financial statements computed, by kind.",
		}, []string{"kind"}),
	}

	for _, c := range []prometheus.Collector{
		m.entriesDrafted,
		m.entriesPosted,
		m.pipelineFailures,
		m.statementsServed,
	} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) RecordEntryDrafted(status string) {
	if m == nil {
		return
	}
	m.entriesDrafted.WithLabelValues(status).Inc()
}

func (m *Metrics) RecordEntryPosted() {
	if m == nil {
		return
	}
	m.entriesPosted.Inc()
}

func (m *Metrics) RecordPipelineFailure(stage string) {
	if m == nil {
		return
	}
	m.pipelineFailures.WithLabelValues(stage).Inc()
}

func (m *Metrics) RecordStatement(kind string) {
	if m == nil {
		return
	}
	m.statementsServed.WithLabelValues(kind).Inc()
}
