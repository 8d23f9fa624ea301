package observability

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/aretw0/echolattice/pkg/domain"
)

// Metrics holds the engine counters. Attach Hooks() to an engine to feed
// them; read them back through the Registerer they were registered on.
type Metrics struct {
	NodesCreated   *prometheus.CounterVec
	DedupHits      prometheus.Counter
	NoveltySkips   prometheus.Counter
	Sessions       prometheus.Counter
	SessionsGround prometheus.Counter
}

// New creates the metric set and registers it on reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		NodesCreated: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "echolattice_nodes_created_total",
				Help: "Nodes created, labeled by producing transform.",
			},
			[]string{"transform"},
		),
		DedupHits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "echolattice_dedup_hits_total",
			Help: "Candidates merged into an existing node by session-wide dedup.",
		}),
		NoveltySkips: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "echolattice_novelty_skips_total",
			Help: "Candidates dropped below the novelty threshold.",
		}),
		Sessions: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "echolattice_sessions_total",
			Help: "Completed recursion sessions.",
		}),
		SessionsGround: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "echolattice_sessions_grounded_total",
			Help: "Completed sessions that produced a Ground node.",
		}),
	}
	reg.MustRegister(m.NodesCreated, m.DedupHits, m.NoveltySkips, m.Sessions, m.SessionsGround)
	return m
}

// Hooks returns lifecycle hooks that increment the counters.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnNodeCreated: func(_ context.Context, e *domain.NodeEvent) {
			m.NodesCreated.WithLabelValues(e.Transform).Inc()
		},
		OnDedupHit: func(_ context.Context, _ *domain.NodeEvent) {
			m.DedupHits.Inc()
		},
		OnNoveltySkipped: func(_ context.Context, _ *domain.NodeEvent) {
			m.NoveltySkips.Inc()
		},
		OnSessionEnd: func(_ context.Context, e *domain.SessionEvent) {
			m.Sessions.Inc()
			if e.Grounded {
				m.SessionsGround.Inc()
			}
		},
	}
}
