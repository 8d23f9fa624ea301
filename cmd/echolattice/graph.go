package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/aretw0/echolattice/internal/presentation/graph"
	"github.com/aretw0/echolattice/pkg/domain"
	"github.com/spf13/cobra"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph [echo_map.json]",
	Short: "Export a session graph as a Mermaid diagram",
	Long:  `Reads a saved echo_map.json artifact and outputs a Mermaid diagram (graph TD) of the session lattice.`,
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		path := "echo_map.json"
		if len(args) > 0 {
			path = args[0]
		}

		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Printf("Error reading graph: %v\n", err)
			os.Exit(1)
		}

		var g domain.EchoGraph
		if err := json.Unmarshal(data, &g); err != nil {
			fmt.Printf("Error parsing %s: %v\n", path, err)
			os.Exit(1)
		}

		fmt.Print(graph.GenerateMermaid(&g))
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
}
