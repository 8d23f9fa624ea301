package runtime

import (
	"github.com/aretw0/echolattice/pkg/domain"
)

// dedupKey identifies a unique node within a session: the transform name
// plus the exact output text.
type dedupKey struct {
	transform string
	text      string
}

// edgeKey identifies a directed (src, dst) edge.
type edgeKey struct {
	src string
	dst string
}

// session owns the mutable build state of one Recurse call: the graph under
// construction, the canonical-key and edge indices, and the session-global
// grounded flag. It is created at the start of a run and discarded after;
// nothing in it is shared across sessions.
type session struct {
	graph     *domain.EchoGraph
	nodeIndex map[dedupKey]*domain.EchoNode
	edgeIndex map[edgeKey]struct{}
	grounded  bool
}

func newSession(meta domain.SessionMeta) *session {
	return &session{
		graph: &domain.EchoGraph{
			Meta:  meta,
			Nodes: []*domain.EchoNode{},
			Edges: []domain.EchoEdge{},
		},
		nodeIndex: make(map[dedupKey]*domain.EchoNode),
		edgeIndex: make(map[edgeKey]struct{}),
	}
}

// addNode appends a node and indexes it under its dedup key.
func (s *session) addNode(n *domain.EchoNode) {
	s.graph.Nodes = append(s.graph.Nodes, n)
	s.nodeIndex[dedupKey{n.Transform, n.Text}] = n
}

// lookup returns the node already holding the given dedup key, or nil.
func (s *session) lookup(transform, text string) *domain.EchoNode {
	return s.nodeIndex[dedupKey{transform, text}]
}

// addEdge records a src->dst edge unless that exact pair already exists.
func (s *session) addEdge(src, dst string) bool {
	key := edgeKey{src, dst}
	if _, ok := s.edgeIndex[key]; ok {
		return false
	}
	s.edgeIndex[key] = struct{}{}
	s.graph.Edges = append(s.graph.Edges, domain.EchoEdge{
		SrcID:    src,
		DstID:    dst,
		Relation: domain.RelationTransformsTo,
	})
	return true
}
