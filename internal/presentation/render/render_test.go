package render

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/echolattice/pkg/domain"
)

func fixtureGraph() *domain.EchoGraph {
	return &domain.EchoGraph{
		Meta: domain.SessionMeta{UserConsent: true, SafetyLevel: domain.SafetyLight, MaxDepth: 2},
		Nodes: []*domain.EchoNode{
			{ID: "r", Text: "Seed Bearer", Transform: domain.TransformSeed, Depth: 0, Occurrences: 1},
			{ID: "m", Text: "Echo of [Seed Bearer] returns as self-reflection.", Transform: domain.TransformMirror, Depth: 1, ParentID: "r", Occurrences: 1},
			{ID: "g", Text: "Action: Write 3 honest sentences, then read them once out loud.", Transform: domain.TransformGround, Depth: 1, ParentID: "r", Occurrences: 2},
		},
		Edges: []domain.EchoEdge{
			{SrcID: "r", DstID: "m", Relation: domain.RelationTransformsTo},
			{SrcID: "r", DstID: "g", Relation: domain.RelationTransformsTo},
		},
	}
}

func TestJSON(t *testing.T) {
	doc, err := JSON(fixtureGraph())
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(doc), &decoded))
	assert.Contains(t, decoded, "meta")
	assert.Contains(t, decoded, "nodes")
	assert.Contains(t, decoded, "edges")

	nodes, ok := decoded["nodes"].([]any)
	require.True(t, ok)
	require.Len(t, nodes, 3)

	first, ok := nodes[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Seed", first["transform"])
	assert.NotContains(t, first, "parent_id", "root must omit parent_id")
}

func TestMarkdownTree(t *testing.T) {
	got := MarkdownTree(fixtureGraph())

	want := "Seed: Seed Bearer\n" +
		"├─ Mirror: Echo of [Seed Bearer] returns as self-reflection.\n" +
		"└─ Ground: Action: Write 3 honest sentences, then read them once out loud."
	assert.Equal(t, want, got)
}

func TestMarkdownTree_Empty(t *testing.T) {
	assert.Equal(t, "(empty)", MarkdownTree(&domain.EchoGraph{}))
}

func TestMarkdownTree_DedupEdgeDoesNotLoop(t *testing.T) {
	g := fixtureGraph()
	// A converging branch re-confirms the ground node from the mirror node.
	g.Edges = append(g.Edges, domain.EchoEdge{SrcID: "m", DstID: "g", Relation: domain.RelationTransformsTo})
	// A pathological back-edge must not recurse forever.
	g.Edges = append(g.Edges, domain.EchoEdge{SrcID: "g", DstID: "r", Relation: domain.RelationTransformsTo})

	got := MarkdownTree(g)
	assert.Contains(t, got, "Seed: Seed Bearer")
	// The merged node renders under both parents.
	assert.Contains(t, got, "├─ └─ Ground:")
}

func TestSummary(t *testing.T) {
	got := Summary(fixtureGraph())

	assert.Contains(t, got, "Seed\nSeed Bearer")
	assert.Contains(t, got, "Top 3 most novel nodes")
	assert.Contains(t, got, "Final Ground action\nAction: Write 3 honest sentences, then read them once out loud.")
	assert.Contains(t, got, "Nodes: 3")
	assert.Contains(t, got, "Edges: 2")
}

func TestSummary_RanksByNovelty(t *testing.T) {
	g := &domain.EchoGraph{
		Nodes: []*domain.EchoNode{
			{ID: "r", Text: "alpha beta", Transform: domain.TransformSeed, Depth: 0, Occurrences: 1},
			{ID: "a", Text: "alpha beta gamma", Transform: domain.TransformMirror, Depth: 1, ParentID: "r", Occurrences: 1},
			{ID: "b", Text: "delta epsilon zeta", Transform: domain.TransformInvert, Depth: 1, ParentID: "r", Occurrences: 1},
		},
	}

	got := Summary(g)
	// The fully divergent node outranks the near-identical one.
	assert.Contains(t, got, "1. Invert: delta epsilon zeta")
	assert.Contains(t, got, "2. Mirror: alpha beta gamma")
}

func TestSummary_NoGround(t *testing.T) {
	g := &domain.EchoGraph{
		Nodes: []*domain.EchoNode{
			{ID: "r", Text: "seed", Transform: domain.TransformSeed, Depth: 0, Occurrences: 1},
		},
	}

	got := Summary(g)
	assert.Contains(t, got, "Final Ground action\n(none)")
	assert.Contains(t, got, "Top 3 most novel nodes\n(none)")
}
