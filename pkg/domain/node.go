package domain

import "time"

// EchoNode represents a single produced text artifact in the session graph.
//
// Invariant: the depth of a non-root node equals its parent's depth + 1.
// Exactly one node per session has Transform == TransformSeed and no parent.
type EchoNode struct {
	ID   string `json:"id"`
	Text string `json:"text"`

	// Transform is the name of the transform that produced this node,
	// or TransformSeed for the root.
	Transform string `json:"transform"`

	// Depth is the distance from the root (root = 0).
	Depth int `json:"depth"`

	// ParentID is empty for the root node.
	ParentID string `json:"parent_id,omitempty"`

	Tags      []string  `json:"tags"`
	Timestamp time.Time `json:"timestamp"`

	// Occurrences counts how many times the (transform, text) pair was
	// produced during the session. Starts at 1 and is incremented on
	// dedup hits; the node itself is never duplicated.
	Occurrences int `json:"occurrences"`
}

// IsRoot reports whether the node is the seed node of its session.
func (n *EchoNode) IsRoot() bool {
	return n.Transform == TransformSeed && n.ParentID == ""
}
