// Package graph exports an EchoGraph as a Mermaid flowchart for
// visualization tools.
package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/echolattice/pkg/domain"
)

// GenerateMermaid produces Mermaid flowchart syntax from an echo graph.
// It applies semantic styling:
//   - Seed: ((Circle))
//   - Terminal transforms (Ground, Abstract): [[Subroutine]]
//   - Default: [Rectangle]
//
// Dedup re-confirmations (occurrences > 1) are annotated on the node label.
func GenerateMermaid(g *domain.EchoGraph) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	for i, node := range g.Nodes {
		safeID := fmt.Sprintf("n%d", i)

		opener, closer := "[", "]"
		switch node.Transform {
		case domain.TransformSeed:
			opener, closer = "((", "))"
		case domain.TransformGround, domain.TransformAbstract:
			opener, closer = "[[", "]]"
		}

		label := fmt.Sprintf("%s: %s", node.Transform, truncate(node.Text, 40))
		if node.Occurrences > 1 {
			label = fmt.Sprintf("%s (x%d)", label, node.Occurrences)
		}
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", safeID, opener, escapeMermaid(label), closer))
	}

	idIndex := make(map[string]string, len(g.Nodes))
	for i, node := range g.Nodes {
		idIndex[node.ID] = fmt.Sprintf("n%d", i)
	}

	for _, e := range g.Edges {
		src, ok := idIndex[e.SrcID]
		if !ok {
			continue
		}
		dst, ok := idIndex[e.DstID]
		if !ok {
			continue
		}
		sb.WriteString(fmt.Sprintf("    %s -->|%s| %s\n", src, e.Relation, dst))
	}

	return sb.String()
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}

func escapeMermaid(s string) string {
	return strings.ReplaceAll(s, "\"", "'")
}
