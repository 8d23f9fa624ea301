package render

import (
	"fmt"
	"strings"

	"github.com/aretw0/echolattice/pkg/domain"
)

const (
	branchMid  = "├─ "
	branchLast = "└─ "
)

// MarkdownTree renders the graph as an indented tree rooted at the depth-0
// node, using box-drawing branch markers. The root is labeled
// "Seed: <text>" and every other node "<Transform>: <text>". Nodes merged
// by dedup appear once under every parent that re-confirmed them.
func MarkdownTree(graph *domain.EchoGraph) string {
	root := graph.Root()
	if root == nil {
		return "(empty)"
	}

	var sb strings.Builder
	walkTree(graph, &sb, root.ID, "", map[string]bool{})
	return strings.TrimRight(sb.String(), "\n")
}

// walkTree walks depth-first. onPath guards against cycles introduced by
// dedup edges pointing back to an ancestor.
func walkTree(graph *domain.EchoGraph, sb *strings.Builder, nodeID, prefix string, onPath map[string]bool) {
	n := graph.NodeByID(nodeID)
	if n == nil || onPath[nodeID] {
		return
	}
	sb.WriteString(prefix)
	sb.WriteString(fmt.Sprintf("%s: %s\n", n.Transform, n.Text))

	onPath[nodeID] = true
	kids := graph.Children(nodeID)
	for i, kid := range kids {
		branch := branchMid
		if i == len(kids)-1 {
			branch = branchLast
		}
		walkTree(graph, sb, kid, prefix+branch, onPath)
	}
	delete(onPath, nodeID)
}
