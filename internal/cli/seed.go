package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// isInteractive reports whether stdin is attached to a terminal.
func isInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// printSeedExamples writes the missing-seed guidance to stderr.
func printSeedExamples() {
	fmt.Fprint(os.Stderr, `
EchoLattice needs a SEED (some text to recurse on).

Examples:
  echolattice run --seed "Seed Bearer" --depth 2 --consent
  echolattice run "Echoholder / Zahaviel / Fang" --depth 3 --consent

`)
}

// ResolveSeed resolves the seed text.
//
// Behavior:
//   - The --seed flag wins over the positional argument.
//   - If missing: show examples, then prompt when interactive.
//   - If the user cancels or enters nothing: return "" (normal exit, not
//     an error; the engine itself accepts any string).
func ResolveSeed(flagSeed, positional string) string {
	seed := strings.TrimSpace(flagSeed)
	if seed == "" {
		seed = strings.TrimSpace(positional)
	}
	if seed != "" {
		return seed
	}

	printSeedExamples()
	if !isInteractive() {
		return ""
	}

	fmt.Fprint(os.Stderr, "Enter seed text (or press Enter to cancel): ")
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return ""
	}
	return strings.TrimSpace(line)
}
