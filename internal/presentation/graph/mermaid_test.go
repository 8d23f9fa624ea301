package graph

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aretw0/echolattice/pkg/domain"
)

func TestGenerateMermaid(t *testing.T) {
	g := &domain.EchoGraph{
		Nodes: []*domain.EchoNode{
			{ID: "r", Text: "seed", Transform: domain.TransformSeed, Occurrences: 1},
			{ID: "m", Text: "Echo short", Transform: domain.TransformMirror, ParentID: "r", Occurrences: 1},
			{ID: "g", Text: "Action: breathe", Transform: domain.TransformGround, ParentID: "r", Occurrences: 2},
		},
		Edges: []domain.EchoEdge{
			{SrcID: "r", DstID: "m", Relation: domain.RelationTransformsTo},
			{SrcID: "r", DstID: "g", Relation: domain.RelationTransformsTo},
		},
	}

	out := GenerateMermaid(g)

	assert.True(t, strings.HasPrefix(out, "graph TD\n"))
	assert.Contains(t, out, `n0(("Seed: seed"))`)
	assert.Contains(t, out, `n1["Mirror: Echo short"]`)
	assert.Contains(t, out, `n2[["Ground: Action: breathe (x2)"]]`)
	assert.Contains(t, out, "n0 -->|transforms_to| n1")
	assert.Contains(t, out, "n0 -->|transforms_to| n2")
}

func TestGenerateMermaid_TruncatesAndEscapes(t *testing.T) {
	long := strings.Repeat("a", 60) + ` with "quotes"`
	g := &domain.EchoGraph{
		Nodes: []*domain.EchoNode{
			{ID: "r", Text: long, Transform: domain.TransformSeed, Occurrences: 1},
		},
	}

	out := GenerateMermaid(g)

	assert.NotContains(t, out, `with "quotes"`)
	assert.Contains(t, out, "…")
}

func TestGenerateMermaid_SkipsDanglingEdges(t *testing.T) {
	g := &domain.EchoGraph{
		Nodes: []*domain.EchoNode{
			{ID: "r", Text: "seed", Transform: domain.TransformSeed, Occurrences: 1},
		},
		Edges: []domain.EchoEdge{
			{SrcID: "r", DstID: "missing", Relation: domain.RelationTransformsTo},
		},
	}

	out := GenerateMermaid(g)
	assert.NotContains(t, out, "-->")
}
