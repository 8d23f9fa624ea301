package policy

import "github.com/mitchellh/mapstructure"

// parsedReport is the validated view of a stability report.
type parsedReport struct {
	loopHits         map[string]any
	loopTotal        float64
	invertNestingMax float64
	dedupSaved       float64
	avgNovelty       any
	groundReached    bool
}

// rawReport mirrors the external report shape. Pointer fields distinguish
// "absent" from zero values during validation.
type rawReport struct {
	LoopPatternHits  map[string]any `mapstructure:"loop_pattern_hits"`
	InvertNestingMax *float64       `mapstructure:"invert_nesting_max"`
	DedupSaved       *float64       `mapstructure:"dedup_saved"`
	AvgNovelty       any            `mapstructure:"avg_novelty_to_ground"`
	GroundReached    *bool          `mapstructure:"ground_reached"`
}

// parseReport validates the externally supplied report. It returns false for
// any missing required field or shape mismatch; the caller maps that to a
// DEFER decision.
func parseReport(report map[string]any) (parsedReport, bool) {
	if report == nil {
		return parsedReport{}, false
	}

	var raw rawReport
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &raw,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return parsedReport{}, false
	}
	if err := dec.Decode(report); err != nil {
		return parsedReport{}, false
	}

	if raw.LoopPatternHits == nil || raw.InvertNestingMax == nil ||
		raw.DedupSaved == nil || raw.GroundReached == nil {
		return parsedReport{}, false
	}

	totalVal, present := raw.LoopPatternHits["total"]
	if !present {
		return parsedReport{}, false
	}
	total, ok := toFloat(totalVal)
	if !ok {
		return parsedReport{}, false
	}

	return parsedReport{
		loopHits:         raw.LoopPatternHits,
		loopTotal:        total,
		invertNestingMax: *raw.InvertNestingMax,
		dedupSaved:       *raw.DedupSaved,
		avgNovelty:       raw.AvgNovelty,
		groundReached:    *raw.GroundReached,
	}, true
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	default:
		return 0, false
	}
}
