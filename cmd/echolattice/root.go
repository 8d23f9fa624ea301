package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "echolattice",
	Short: "EchoLattice is a recursive text-transform lattice engine",
	Long: `EchoLattice expands a seed text into a bounded graph of transformed
echoes (mirrors, inversions, symbols, abstractions) and always offers a
path back to the ground.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "echolattice.yaml", "Path to the project config file")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
}
