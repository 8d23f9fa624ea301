// Package render produces the serialized artifacts of a finished session:
// a JSON document, a Markdown indented tree, and a plain-text summary.
// It treats the graph as read-only.
package render

import (
	"encoding/json"

	"github.com/aretw0/echolattice/pkg/domain"
)

// JSON serializes the graph as an indented JSON document with top-level
// keys meta, nodes, and edges.
func JSON(graph *domain.EchoGraph) (string, error) {
	data, err := json.MarshalIndent(graph, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
