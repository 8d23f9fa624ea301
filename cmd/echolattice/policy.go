package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/aretw0/echolattice/internal/bench"
	"github.com/aretw0/echolattice/internal/cli"
	"github.com/aretw0/echolattice/pkg/domain"
	"github.com/aretw0/echolattice/pkg/policy"
	"github.com/spf13/cobra"
)

// policyCmd represents the policy command
var policyCmd = &cobra.Command{
	Use:   "policy [echo_map.json]",
	Short: "Evaluate a finished session against the escalation policy",
	Long: `Reads a saved echo_map.json artifact, computes its stability report, and
prints the resulting decision record. A raw stability report JSON file is
accepted too. Threshold overrides are taken from the project config file.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		path := "echo_map.json"
		if len(args) > 0 {
			path = args[0]
		}
		configPath, _ := cmd.Flags().GetString("config")
		mode, _ := cmd.Flags().GetString("mode")

		cfg, err := cli.LoadConfig(configPath)
		if err != nil {
			fmt.Printf("Error loading config: %v\n", err)
			os.Exit(1)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Printf("Error reading %s: %v\n", path, err)
			os.Exit(1)
		}

		report, err := reportFrom(data)
		if err != nil {
			fmt.Printf("Error parsing %s: %v\n", path, err)
			os.Exit(1)
		}

		decision := policy.Decide(report, cfg.Thresholds)
		record := policy.NewRecord(decision, mode)

		out, err := json.MarshalIndent(record, "", "  ")
		if err != nil {
			fmt.Printf("Error encoding record: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(string(out))
	},
}

// reportFrom accepts either a session graph artifact (a stability report is
// computed from it) or an already-computed stability report.
func reportFrom(data []byte) (map[string]any, error) {
	var g domain.EchoGraph
	if err := json.Unmarshal(data, &g); err == nil && len(g.Nodes) > 0 {
		return bench.Compute(&g).PolicyInput(), nil
	}

	var report map[string]any
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, err
	}
	return report, nil
}

func init() {
	rootCmd.AddCommand(policyCmd)

	policyCmd.Flags().String("mode", "cli", "Mode label recorded in the decision envelope")
}
