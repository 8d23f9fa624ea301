package domain

// EchoGraph is the aggregate produced by one recursion run: session metadata
// plus the node and edge lists in insertion order. The structure is
// append-only during the run and frozen afterwards; renderers and reporting
// collaborators treat it as read-only.
type EchoGraph struct {
	Meta  SessionMeta `json:"meta"`
	Nodes []*EchoNode `json:"nodes"`
	Edges []EchoEdge  `json:"edges"`
}

// Root returns the depth-0 seed node, or nil for an empty graph.
func (g *EchoGraph) Root() *EchoNode {
	for _, n := range g.Nodes {
		if n.Depth == 0 {
			return n
		}
	}
	return nil
}

// NodeByID returns the node with the given id, or nil.
func (g *EchoGraph) NodeByID(id string) *EchoNode {
	for _, n := range g.Nodes {
		if n.ID == id {
			return n
		}
	}
	return nil
}

// FirstByTransform returns the first node (in insertion order) produced by
// the named transform, or nil.
func (g *EchoGraph) FirstByTransform(transform string) *EchoNode {
	for _, n := range g.Nodes {
		if n.Transform == transform {
			return n
		}
	}
	return nil
}

// Children returns the destination ids of all edges leaving the given node,
// in insertion order.
func (g *EchoGraph) Children(id string) []string {
	var kids []string
	for _, e := range g.Edges {
		if e.SrcID == id {
			kids = append(kids, e.DstID)
		}
	}
	return kids
}
