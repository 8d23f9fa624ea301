// Package novelty computes the lexical divergence between two strings.
//
// The score is the Jaccard distance between the lowercase word sets of the
// inputs: 0 means identical vocabulary, 1 means fully disjoint. The engine
// uses it to gate low-novelty candidates out of the graph.
package novelty

import (
	"regexp"
	"strings"
)

var wordRe = regexp.MustCompile(`[a-z][a-z\-]+`)

// Words tokenizes a string into its lowercase alphabetic-run word set.
func Words(s string) map[string]bool {
	set := make(map[string]bool)
	for _, tok := range wordRe.FindAllString(strings.ToLower(s), -1) {
		set[tok] = true
	}
	return set
}

// Score returns the Jaccard distance between the word sets of parent and
// candidate. Two empty word sets score 0.0. Pure function, no state.
func Score(parent, candidate string) float64 {
	a := Words(parent)
	b := Words(candidate)
	if len(a) == 0 && len(b) == 0 {
		return 0.0
	}

	inter := 0
	union := len(b)
	for w := range a {
		if b[w] {
			inter++
		} else {
			union++
		}
	}
	if union == 0 {
		return 0.0
	}
	return 1.0 - float64(inter)/float64(union)
}
