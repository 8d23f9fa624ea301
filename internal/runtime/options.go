package runtime

import (
	"log/slog"
	"time"

	"github.com/aretw0/echolattice/pkg/domain"
)

// EngineOption defines a functional option for configuring the Engine.
type EngineOption func(*Engine)

// WithMaxDepth sets the maximum recursion depth (default 3).
func WithMaxDepth(depth int) EngineOption {
	return func(e *Engine) {
		e.maxDepth = depth
	}
}

// WithMaxMinutes sets the wall-clock session budget in minutes (default 30).
// The budget is advisory: it is checked between expansion steps, never
// preemptively inside a transform call.
func WithMaxMinutes(minutes int) EngineOption {
	return func(e *Engine) {
		e.maxMinutes = minutes
	}
}

// WithBranching caps the number of transforms applied per expansion.
// Ground, when present in the pipeline, always occupies one slot.
func WithBranching(limit int) EngineOption {
	return func(e *Engine) {
		e.branching = limit
		e.branchingSet = true
	}
}

// WithRNGSeed seeds the session sampler so branching selection is
// reproducible. Without it runs are valid but non-reproducible.
func WithRNGSeed(seed int64) EngineOption {
	return func(e *Engine) {
		e.rngSeed = &seed
	}
}

// WithNoveltyThreshold skips candidates whose Jaccard novelty against their
// parent falls below the threshold. Must be within [0,1].
func WithNoveltyThreshold(threshold float64) EngineOption {
	return func(e *Engine) {
		e.noveltyThreshold = &threshold
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) EngineOption {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithClock injects the time source used for session stamps and the
// time-budget check. Tests use it to exercise the budget deterministically.
func WithClock(now func() time.Time) EngineOption {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}
