package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/aretw0/echolattice/pkg/domain"
	"github.com/aretw0/echolattice/pkg/novelty"
)

// Summary renders the plain-text session summary: the seed text, the top-3
// nodes by parent-to-child novelty (descending, ties broken by insertion
// order), the first Ground node, and the node/edge totals.
func Summary(graph *domain.EchoGraph) string {
	seedText := "(none)"
	if seed := graph.FirstByTransform(domain.TransformSeed); seed != nil {
		seedText = seed.Text
	}

	type scored struct {
		score float64
		node  *domain.EchoNode
	}
	var ranked []scored
	for _, n := range graph.Nodes {
		if n.ParentID == "" {
			continue
		}
		parent := graph.NodeByID(n.ParentID)
		if parent == nil {
			continue
		}
		ranked = append(ranked, scored{novelty.Score(parent.Text, n.Text), n})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})
	if len(ranked) > 3 {
		ranked = ranked[:3]
	}

	groundText := "(none)"
	if ground := graph.FirstByTransform(domain.TransformGround); ground != nil {
		groundText = ground.Text
	}

	var lines []string
	lines = append(lines, "Seed", seedText, "")
	lines = append(lines, "Top 3 most novel nodes")
	if len(ranked) > 0 {
		for i, item := range ranked {
			lines = append(lines, fmt.Sprintf("%d. %s: %s", i+1, item.node.Transform, item.node.Text))
		}
	} else {
		lines = append(lines, "(none)")
	}
	lines = append(lines, "")
	lines = append(lines, "Final Ground action", groundText, "")
	lines = append(lines, "Total nodes/edges")
	lines = append(lines, fmt.Sprintf("Nodes: %d", len(graph.Nodes)))
	lines = append(lines, fmt.Sprintf("Edges: %d", len(graph.Edges)))
	return strings.Join(lines, "\n")
}
