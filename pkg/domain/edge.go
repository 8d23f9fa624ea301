package domain

// EchoEdge is a directed relation between two node ids.
//
// Invariant: no duplicate edges for the same (src, dst) pair within a
// session. Edges only ever point from a parent to a node created or
// re-confirmed from it, so converging branches merge into a DAG rather
// than a forest of duplicates.
type EchoEdge struct {
	SrcID    string `json:"src_id"`
	DstID    string `json:"dst_id"`
	Relation string `json:"relation"`
}
