package bench

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/echolattice/pkg/domain"
	"github.com/aretw0/echolattice/pkg/policy"
)

func fixtureGraph() *domain.EchoGraph {
	return &domain.EchoGraph{
		Nodes: []*domain.EchoNode{
			{ID: "r", Text: "x", Transform: domain.TransformSeed, Depth: 0, Occurrences: 1},
			{ID: "m", Text: "Echo of [x] returns as self-reflection.", Transform: domain.TransformMirror, Depth: 1, ParentID: "r", Occurrences: 1},
			{ID: "i", Text: "Shadow of (Shadow of (x) reveals its opposite.) reveals its opposite.", Transform: domain.TransformInvert, Depth: 1, ParentID: "r", Occurrences: 2},
			{ID: "s", Text: "Symbols: y", Transform: domain.TransformSymbolize, Depth: 1, ParentID: "r", Occurrences: 1},
			{ID: "g", Text: "Action: Take 6 slow breaths, then call or text a trusted friend.", Transform: domain.TransformGround, Depth: 2, ParentID: "i", Occurrences: 1},
		},
		Edges: []domain.EchoEdge{
			{SrcID: "r", DstID: "m", Relation: domain.RelationTransformsTo},
			{SrcID: "r", DstID: "i", Relation: domain.RelationTransformsTo},
			{SrcID: "r", DstID: "s", Relation: domain.RelationTransformsTo},
			{SrcID: "i", DstID: "g", Relation: domain.RelationTransformsTo},
		},
	}
}

func TestCompute(t *testing.T) {
	rep := Compute(fixtureGraph())

	assert.Equal(t, 1, rep.LoopPatternHits.EchoOf)
	assert.Equal(t, 1, rep.LoopPatternHits.ShadowOf)
	assert.Equal(t, 1, rep.LoopPatternHits.Symbols)
	assert.Equal(t, 3, rep.LoopPatternHits.Total)
	assert.Equal(t, 2, rep.InvertNestingMax)
	// 5 productions landed on 4 distinct non-root nodes.
	assert.InDelta(t, 0.2, rep.DedupSaved, 1e-9)
}

func TestCompute_GroundDescriptors(t *testing.T) {
	rep := Compute(fixtureGraph())

	require.True(t, rep.GroundReached)
	assert.Equal(t, "Seed>Invert>Ground", rep.GroundPath)
	assert.Equal(t, ChannelBreath, rep.GroundChannel)
	assert.Len(t, rep.GroundHash, 8)
	assert.Greater(t, rep.AvgNoveltyToGround, 0.0)
	assert.LessOrEqual(t, rep.AvgNoveltyToGround, 1.0)
}

func TestCompute_NoGround(t *testing.T) {
	rep := Compute(&domain.EchoGraph{
		Nodes: []*domain.EchoNode{
			{ID: "r", Text: "seed", Transform: domain.TransformSeed, Depth: 0, Occurrences: 1},
		},
	})

	assert.False(t, rep.GroundReached)
	assert.Empty(t, rep.GroundHash)
	assert.Empty(t, rep.GroundChannel)
	assert.Empty(t, rep.GroundPath)
	assert.Zero(t, rep.DedupSaved)
}

func TestShortHash(t *testing.T) {
	a := shortHash("Action: breathe")
	b := shortHash("Action: breathe")
	c := shortHash("Action: walk")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, a, 8)
}

func TestClassifyChannel(t *testing.T) {
	tests := []struct {
		action string
		want   string
	}{
		{"Take 6 slow breaths, then call or text a trusted friend.", ChannelBreath},
		{"Step away for 5 minutes, then return and do one small change.", ChannelMovement},
		{"Stand up, feel your feet, and name 3 things you can see.", ChannelEnvironment},
		{"Call a friend and talk it through.", ChannelSocial},
		{"Write 3 honest sentences, then read them once out loud.", ChannelWriting},
		{"anything else", ChannelWriting},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, classifyChannel(tt.action), "action %q", tt.action)
	}
}

func TestPolicyInput_FeedsEvaluator(t *testing.T) {
	rep := Compute(fixtureGraph())
	d := policy.Decide(rep.PolicyInput(), nil)

	assert.NotEqual(t, policy.ActionDefer, d.Action)
}
