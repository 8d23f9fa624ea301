package tui

import (
	"fmt"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the EchoLattice ASCII banner with version.
func PrintBanner(version string) {
	p := termenv.ColorProfile()
	// Subtle gradient from indigo to rose, matching the session cooldown mood.
	s1 := termenv.String("  _____     _           ").Foreground(p.Color("#818cf8"))
	s2 := termenv.String(" | ____|___| |__   ___  ").Foreground(p.Color("#a78bfa"))
	s3 := termenv.String(" |  _| / __| '_ \\ / _ \\ ").Foreground(p.Color("#c084fc"))
	s4 := termenv.String(" | |__| (__| | | | (_) |").Foreground(p.Color("#e879f9"))
	s5 := termenv.String(" |_____\\___|_| |_|\\___/   Lattice").Foreground(p.Color("#f472b6"))

	fmt.Println()
	fmt.Println(s1)
	fmt.Println(s2)
	fmt.Println(s3)
	fmt.Println(s4)
	fmt.Println(s5)
	fmt.Printf("  v%s\n", version)
	fmt.Println()
}
