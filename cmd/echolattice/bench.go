package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/aretw0/echolattice/internal/bench"
	"github.com/aretw0/echolattice/internal/logging"
	"github.com/spf13/cobra"
)

// benchCmd represents the bench command
var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Run the built-in evaluation corpus",
	Long: `Runs every benchmark seed under every configuration with a fixed RNG
seed and writes one JSONL row per session plus a markdown summary.`,
	Run: func(cmd *cobra.Command, args []string) {
		out, _ := cmd.Flags().GetString("out")
		summary, _ := cmd.Flags().GetString("summary")
		debug, _ := cmd.Flags().GetBool("debug")

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		runner := bench.NewRunner(logging.ForDebug(debug))
		if err := runner.Run(ctx, out, summary); err != nil {
			fmt.Printf("Error running benchmark: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Saved: %s and %s\n", out, summary)
	},
}

func init() {
	rootCmd.AddCommand(benchCmd)

	benchCmd.Flags().String("out", "bench_results.jsonl", "Path for the per-session JSONL results")
	benchCmd.Flags().String("summary", "bench_summary.md", "Path for the markdown summary")
}
