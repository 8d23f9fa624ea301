package main

import (
	"fmt"
	"os"

	"github.com/aretw0/echolattice/internal/cli"
	"github.com/spf13/cobra"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run [seed]",
	Short: "Run one recursion session over a seed text",
	Long: `Expands the seed through the transform pipeline into a bounded echo
graph and writes three artifacts: echo_map.json, echo_map.md, and
echo_summary.md.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		opts := cli.RunOptions{}
		opts.Seed, _ = cmd.Flags().GetString("seed")
		if len(args) > 0 {
			opts.SeedPos = args[0]
		}
		opts.Depth, _ = cmd.Flags().GetInt("depth")
		opts.Minutes, _ = cmd.Flags().GetInt("minutes")
		opts.Branching, _ = cmd.Flags().GetInt("branching")
		opts.RNGSeed, _ = cmd.Flags().GetInt64("rng-seed")
		opts.RNGSeedSet = cmd.Flags().Changed("rng-seed")
		opts.Novelty, _ = cmd.Flags().GetFloat64("novelty")
		opts.NoveltySet = cmd.Flags().Changed("novelty")
		opts.Consent, _ = cmd.Flags().GetBool("consent")
		opts.Clinical, _ = cmd.Flags().GetBool("clinical")
		opts.Debug, _ = cmd.Flags().GetBool("debug")
		opts.ConfigPath, _ = cmd.Flags().GetString("config")
		opts.OutJSON, _ = cmd.Flags().GetString("out-json")
		opts.OutMD, _ = cmd.Flags().GetString("out-md")
		opts.OutSummary, _ = cmd.Flags().GetString("out-summary")

		if err := opts.Execute(); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().String("seed", "", "Seed text to recurse on (wins over the positional argument)")
	runCmd.Flags().Int("depth", 3, "Maximum recursion depth")
	runCmd.Flags().Int("minutes", 30, "Advisory session time budget in minutes")
	runCmd.Flags().Int("branching", 0, "Cap on transforms per node (0 = full pipeline)")
	runCmd.Flags().Int64("rng-seed", 0, "RNG seed for reproducible branching")
	runCmd.Flags().Float64("novelty", 0, "Minimum novelty for a candidate to enter the graph (0..1)")
	runCmd.Flags().Bool("consent", false, "Record explicit consent in the session metadata")
	runCmd.Flags().Bool("clinical", false, "Use the clinical-safe closing messages")
	runCmd.Flags().String("out-json", "echo_map.json", "Path for the graph JSON artifact")
	runCmd.Flags().String("out-md", "echo_map.md", "Path for the markdown tree artifact")
	runCmd.Flags().String("out-summary", "echo_summary.md", "Path for the session summary artifact")

	// Make 'run' the default if no command is provided.
	rootCmd.Run = runCmd.Run
	rootCmd.Args = runCmd.Args
	rootCmd.Flags().AddFlagSet(runCmd.Flags())
}
