package registry

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/aretw0/echolattice/pkg/domain"
)

// Builtin returns a registry populated with the five canonical transforms.
// Ground and Abstract are terminal: their output nodes never spawn children.
func Builtin() *Registry {
	r := New()
	r.Register(domain.TransformMirror, Mirror)
	r.Register(domain.TransformInvert, Invert)
	r.Register(domain.TransformSymbolize, Symbolize)
	r.RegisterTerminal(domain.TransformAbstract, Abstract)
	r.RegisterTerminal(domain.TransformGround, Ground)
	return r
}

const mirrorMarker = "Echo of ["

// Mirror wraps the text as a self-reflection. It is guarded against nested
// mirroring: text that already starts with the marker, or contains it more
// than once, passes through unchanged.
func Mirror(text string) string {
	if strings.HasPrefix(text, mirrorMarker) || strings.Count(text, mirrorMarker) > 1 {
		return text
	}
	return fmt.Sprintf("Echo of [%s] returns as self-reflection.", text)
}

// invertSwaps is a fixed ordered set of case-insensitive whole-word
// substitutions. Order matters: "I am" must fire before shorter patterns
// could interfere with its replacement.
var invertSwaps = []struct {
	pattern *regexp.Regexp
	repl    string
}{
	{regexp.MustCompile(`(?i)\bI am\b`), "I am not"},
	{regexp.MustCompile(`(?i)\bpower\b`), "humility"},
	{regexp.MustCompile(`(?i)\blight\b`), "shadow"},
	{regexp.MustCompile(`(?i)\bstrong\b`), "soft"},
	{regexp.MustCompile(`(?i)\bforward\b`), "still"},
}

// Invert applies the fixed inversion substitutions. If no substitution fired,
// it falls back to a generic shadow framing so the output always diverges.
func Invert(text string) string {
	inv := text
	for _, swap := range invertSwaps {
		inv = swap.pattern.ReplaceAllString(inv, swap.repl)
	}
	if inv == text {
		return fmt.Sprintf("Shadow of (%s) reveals its opposite.", text)
	}
	return inv
}

const symbolPrefix = "Symbols:"

// symbolTable maps names to epithets, replaced whole-word and in order.
var symbolTable = []struct {
	pattern *regexp.Regexp
	epithet string
}{
	{wholeWord("Echoholder"), "The Mirror-Guardian"},
	{wholeWord("Zahaviel"), "The Watcher at the Gate"},
	{wholeWord("Fang"), "The Blade of Discernment"},
	{wholeWord("fang"), "The Blade of Discernment"},
	{wholeWord("Seed Bearer"), "The Carrier of Beginnings"},
}

func wholeWord(literal string) *regexp.Regexp {
	return regexp.MustCompile(`\b` + regexp.QuoteMeta(literal) + `\b`)
}

// Symbolize replaces known names with their epithets and prefixes the result.
// Idempotent: text already carrying the prefix passes through unchanged.
func Symbolize(text string) string {
	if strings.HasPrefix(text, symbolPrefix) {
		return text
	}
	out := text
	for _, entry := range symbolTable {
		out = entry.pattern.ReplaceAllString(out, entry.epithet)
	}
	return symbolPrefix + " " + out
}

var wordRe = regexp.MustCompile(`[A-Za-z][A-Za-z\-]+`)

// Abstract reduces the text to a principle line built from its distinct
// capitalized tokens (sorted), falling back to the first 5 distinct tokens
// of any case when none are capitalized. At most 8 keywords are emitted.
func Abstract(text string) string {
	tokens := wordRe.FindAllString(text, -1)

	seen := make(map[string]bool)
	var keywords []string
	for _, tok := range tokens {
		if tok[0] >= 'A' && tok[0] <= 'Z' && !seen[tok] {
			seen[tok] = true
			keywords = append(keywords, tok)
		}
	}
	sort.Strings(keywords)

	if len(keywords) == 0 {
		distinct := make(map[string]bool)
		for _, tok := range tokens {
			distinct[tok] = true
		}
		for tok := range distinct {
			keywords = append(keywords, tok)
		}
		sort.Strings(keywords)
		if len(keywords) > 5 {
			keywords = keywords[:5]
		}
	}

	if len(keywords) > 8 {
		keywords = keywords[:8]
	}
	return "Principle: " + strings.Join(keywords, ", ")
}

// groundRules map theme keywords to concrete actions, checked in order.
// The first matching rule wins.
var groundRules = []struct {
	keys   []string
	action string
}{
	{[]string{"loop", "cycle", "repeat"}, "Step away for 5 minutes, then return and do one small change."},
	{[]string{"fear", "afraid", "anxiety"}, "Take 6 slow breaths, then call or text a trusted friend."},
	{[]string{"mirror", "echo", "reflection"}, "Write 3 honest sentences, then read them once out loud."},
	{[]string{"blade", "fang", "cut"}, "List 3 things to cut away; drop the easiest one today."},
	{[]string{"ground", "earth", "root"}, "Stand up, feel your feet, and name 3 things you can see."},
}

// Ground converts the text into a single concrete real-world action. Known
// theme keywords select a fixed action; otherwise an action is synthesized
// from up to two themes extracted from the text in first-seen order.
func Ground(text string) string {
	tokens := wordRe.FindAllString(strings.ToLower(text), -1)

	words := make(map[string]bool)
	var themes []string
	for _, tok := range tokens {
		if len(tok) <= 2 {
			continue
		}
		if !words[tok] && len(themes) < 2 {
			themes = append(themes, tok)
		}
		words[tok] = true
	}

	for _, rule := range groundRules {
		for _, key := range rule.keys {
			if words[key] {
				return "Action: " + rule.action
			}
		}
	}

	if len(themes) > 0 {
		theme := strings.Join(themes, " / ")
		return fmt.Sprintf("Action: Pick one small step for %s; write it down and do it for 5 minutes.", theme)
	}
	return "Action: Pick one small next step; write it down and do it for 5 minutes."
}
