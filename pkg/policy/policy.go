// Package policy grades the structural metrics of a completed session and
// recommends a corrective action.
//
// It is independent of the engine internals: the input is a stability report
// computed by an external reporting collaborator, supplied as a loosely
// typed map. Decide is a total function over well-formed and malformed
// inputs alike; a report with the wrong shape yields a DEFER decision
// rather than an error.
package policy

import (
	"sort"

	"github.com/mitchellh/mapstructure"
)

// Action is the corrective action recommended for a session.
type Action string

const (
	ActionContinue  Action = "CONTINUE"
	ActionPrune     Action = "PRUNE"
	ActionGroundNow Action = "GROUND_NOW"
	ActionDefer     Action = "DEFER"
)

// Reason codes attached to a decision.
const (
	ReasonLoopinessHigh   = "LOOPINESS_HIGH"
	ReasonInvertNesting   = "INVERT_NESTING"
	ReasonDedupHigh       = "DEDUP_HIGH"
	ReasonGroundUnreached = "GROUND_UNREACHED"
	ReasonInvalidReport   = "INVALID_REPORT"
)

// Decision is the immutable outcome of one Decide call.
type Decision struct {
	Action      Action         `json:"action"`
	Severity    float64        `json:"severity"`
	ReasonCodes []string       `json:"reason_codes"`
	Inputs      map[string]any `json:"inputs"`
}

// Thresholds holds the tunable trigger levels. Keys follow the historical
// uppercase naming so override maps remain compatible across ports.
type Thresholds struct {
	LoopTotalPrune   float64 `mapstructure:"LOOP_TOTAL_PRUNE"`
	LoopTotalGround  float64 `mapstructure:"LOOP_TOTAL_GROUND"`
	InvertNestPrune  float64 `mapstructure:"INVERT_NEST_PRUNE"`
	InvertNestGround float64 `mapstructure:"INVERT_NEST_GROUND"`
	DedupPrune       float64 `mapstructure:"DEDUP_PRUNE"`
	DedupGround      float64 `mapstructure:"DEDUP_GROUND"`

	// NoveltyToGroundLow is informational only; it never changes the action.
	NoveltyToGroundLow float64 `mapstructure:"NOVELTY_TO_GROUND_LOW"`
}

// DefaultThresholds returns the canonical trigger levels.
func DefaultThresholds() Thresholds {
	return Thresholds{
		LoopTotalPrune:     6,
		LoopTotalGround:    10,
		InvertNestPrune:    1,
		InvertNestGround:   2,
		DedupPrune:         0.25,
		DedupGround:        0.40,
		NoveltyToGroundLow: 0.45,
	}
}

// resolveThresholds merges overrides onto the defaults. Unknown keys are
// ignored; values are weakly converted so integer overrides work.
func resolveThresholds(overrides map[string]any) Thresholds {
	th := DefaultThresholds()
	if len(overrides) == 0 {
		return th
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &th,
		WeaklyTypedInput: true,
	})
	if err == nil {
		// Decode errors leave the defaults untouched for the failed keys.
		_ = dec.Decode(overrides)
	}
	return th
}

// Decide evaluates a stability report against the thresholds and returns a
// PolicyDecision. The report must carry loop_pattern_hits (with a "total"
// count), invert_nesting_max, dedup_saved, and ground_reached; any missing
// or malformed field short-circuits to DEFER with reason INVALID_REPORT.
//
// Precedence: GROUND_NOW (ground unreached and a ground threshold crossed),
// then PRUNE (a prune threshold crossed), then CONTINUE.
func Decide(stabilityReport map[string]any, overrides map[string]any) Decision {
	th := resolveThresholds(overrides)

	rep, ok := parseReport(stabilityReport)
	if !ok {
		return Decision{
			Action:      ActionDefer,
			Severity:    0.0,
			ReasonCodes: []string{ReasonInvalidReport},
			Inputs:      map[string]any{},
		}
	}

	var reasons []string
	if rep.loopTotal >= th.LoopTotalGround {
		reasons = append(reasons, ReasonLoopinessHigh)
	}
	if rep.invertNestingMax >= th.InvertNestGround {
		reasons = append(reasons, ReasonInvertNesting)
	}
	if rep.dedupSaved >= th.DedupGround {
		reasons = append(reasons, ReasonDedupHigh)
	}

	var action Action
	switch {
	case !rep.groundReached &&
		(rep.loopTotal >= th.LoopTotalGround ||
			rep.invertNestingMax >= th.InvertNestGround ||
			rep.dedupSaved >= th.DedupGround):
		reasons = append(reasons, ReasonGroundUnreached)
		action = ActionGroundNow
	case rep.loopTotal >= th.LoopTotalPrune ||
		rep.invertNestingMax >= th.InvertNestPrune ||
		rep.dedupSaved >= th.DedupPrune:
		if rep.loopTotal >= th.LoopTotalPrune {
			reasons = append(reasons, ReasonLoopinessHigh)
		}
		if rep.invertNestingMax >= th.InvertNestPrune {
			reasons = append(reasons, ReasonInvertNesting)
		}
		if rep.dedupSaved >= th.DedupPrune {
			reasons = append(reasons, ReasonDedupHigh)
		}
		action = ActionPrune
	default:
		action = ActionContinue
	}

	severity := maxOf(
		ratio(rep.loopTotal, th.LoopTotalGround),
		ratio(rep.invertNestingMax, th.InvertNestGround),
		ratio(rep.dedupSaved, th.DedupGround),
	)
	// The min() in ratio already caps at 1.0; the clamp is an explicit invariant.
	if severity < 0.0 {
		severity = 0.0
	}
	if severity > 1.0 {
		severity = 1.0
	}

	return Decision{
		Action:      action,
		Severity:    severity,
		ReasonCodes: dedupSorted(reasons),
		Inputs: map[string]any{
			"loop_pattern_hits":     rep.loopHits,
			"invert_nesting_max":    rep.invertNestingMax,
			"dedup_saved":           rep.dedupSaved,
			"avg_novelty_to_ground": rep.avgNovelty,
			"ground_reached":        rep.groundReached,
		},
	}
}

func ratio(metric, groundThreshold float64) float64 {
	if groundThreshold == 0 {
		return 1.0
	}
	r := metric / groundThreshold
	if r > 1.0 {
		return 1.0
	}
	return r
}

func maxOf(values ...float64) float64 {
	m := values[0]
	for _, v := range values[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

func dedupSorted(codes []string) []string {
	seen := make(map[string]bool)
	out := make([]string, 0, len(codes))
	for _, c := range codes {
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	sort.Strings(out)
	return out
}
