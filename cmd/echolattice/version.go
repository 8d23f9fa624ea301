package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/echolattice"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of echolattice",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("echolattice version %s\n", strings.TrimSpace(echolattice.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
