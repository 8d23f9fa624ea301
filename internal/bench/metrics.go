// Package bench computes stability reports over finished echo graphs and
// runs the fixed benchmark corpus. It is the reporting collaborator the
// policy evaluator consumes; it never reaches into engine internals, only
// the frozen graph.
package bench

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/aretw0/echolattice/pkg/domain"
	"github.com/aretw0/echolattice/pkg/novelty"
)

// Ground channels classify the real-world action a session landed on.
const (
	ChannelWriting     = "writing"
	ChannelBreath      = "breath"
	ChannelMovement    = "movement"
	ChannelSocial      = "social"
	ChannelEnvironment = "environment"
)

// LoopPatternHits counts the recursion artifacts left in node texts.
type LoopPatternHits struct {
	EchoOf   int `json:"echo_of"`
	ShadowOf int `json:"shadow_of"`
	Symbols  int `json:"symbols"`
	Total    int `json:"total"`
}

// StabilityReport is the aggregate metric summary of one completed session.
type StabilityReport struct {
	LoopPatternHits    LoopPatternHits `json:"loop_pattern_hits"`
	InvertNestingMax   int             `json:"invert_nesting_max"`
	DedupSaved         float64         `json:"dedup_saved"`
	AvgNoveltyToGround float64         `json:"avg_novelty_to_ground"`
	GroundReached      bool            `json:"ground_reached"`

	// Ground descriptors; hash and channel are empty when no Ground node
	// was produced.
	GroundText    string `json:"-"`
	GroundHash    string `json:"-"`
	GroundChannel string `json:"-"`
	GroundPath    string `json:"-"`
}

// Compute derives the stability report from a frozen graph.
func Compute(g *domain.EchoGraph) StabilityReport {
	var rep StabilityReport

	totalOccurrences := 0
	distinct := 0
	for _, n := range g.Nodes {
		if strings.Contains(n.Text, "Echo of [") {
			rep.LoopPatternHits.EchoOf++
		}
		if strings.Contains(n.Text, "Shadow of (") {
			rep.LoopPatternHits.ShadowOf++
		}
		if strings.HasPrefix(n.Text, "Symbols:") {
			rep.LoopPatternHits.Symbols++
		}
		if nesting := strings.Count(n.Text, "Shadow of ("); nesting > rep.InvertNestingMax {
			rep.InvertNestingMax = nesting
		}
		if n.ParentID != "" {
			totalOccurrences += n.Occurrences
			distinct++
		}
	}
	rep.LoopPatternHits.Total = rep.LoopPatternHits.EchoOf +
		rep.LoopPatternHits.ShadowOf + rep.LoopPatternHits.Symbols

	// Fraction of candidate productions eliminated by dedup: every
	// occurrence beyond the first was a merge instead of a new node.
	if totalOccurrences > 0 {
		rep.DedupSaved = float64(totalOccurrences-distinct) / float64(totalOccurrences)
	}

	if ground := g.FirstByTransform(domain.TransformGround); ground != nil {
		rep.GroundReached = true
		rep.GroundText = ground.Text
		rep.GroundHash = shortHash(ground.Text)
		rep.GroundChannel = classifyChannel(ground.Text)
		rep.GroundPath, rep.AvgNoveltyToGround = traceToRoot(g, ground)
	}

	return rep
}

// PolicyInput converts the report to the loosely typed shape the policy
// evaluator accepts.
func (r StabilityReport) PolicyInput() map[string]any {
	return map[string]any{
		"loop_pattern_hits": map[string]any{
			"echo_of":   r.LoopPatternHits.EchoOf,
			"shadow_of": r.LoopPatternHits.ShadowOf,
			"symbols":   r.LoopPatternHits.Symbols,
			"total":     r.LoopPatternHits.Total,
		},
		"invert_nesting_max":    r.InvertNestingMax,
		"dedup_saved":           r.DedupSaved,
		"avg_novelty_to_ground": r.AvgNoveltyToGround,
		"ground_reached":        r.GroundReached,
	}
}

// shortHash returns the first 8 hex chars of the sha256 of the text.
func shortHash(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:4])
}

// classifyChannel maps a Ground action text onto its real-world channel.
// Checks are ordered so multi-cue actions land on their primary channel.
func classifyChannel(action string) string {
	lower := strings.ToLower(action)
	switch {
	case strings.Contains(lower, "breaths"):
		return ChannelBreath
	case strings.Contains(lower, "step away"):
		return ChannelMovement
	case strings.Contains(lower, "stand up"):
		return ChannelEnvironment
	case strings.Contains(lower, "friend"):
		return ChannelSocial
	default:
		return ChannelWriting
	}
}

// traceToRoot follows parent links from the ground node back to the root,
// returning the transform path (root first, ">"-joined) and the mean
// parent-to-child novelty along it.
func traceToRoot(g *domain.EchoGraph, ground *domain.EchoNode) (string, float64) {
	var chain []*domain.EchoNode
	for n := ground; n != nil; n = g.NodeByID(n.ParentID) {
		chain = append(chain, n)
		if n.ParentID == "" {
			break
		}
	}

	// Reverse into root-first order.
	names := make([]string, 0, len(chain))
	for i := len(chain) - 1; i >= 0; i-- {
		names = append(names, chain[i].Transform)
	}

	var total float64
	links := 0
	for i := len(chain) - 1; i > 0; i-- {
		total += novelty.Score(chain[i].Text, chain[i-1].Text)
		links++
	}
	avg := 0.0
	if links > 0 {
		avg = total / float64(links)
	}
	return strings.Join(names, ">"), avg
}
