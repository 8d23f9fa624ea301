package echolattice

import (
	"context"
	"log/slog"
	"time"

	"github.com/aretw0/echolattice/internal/runtime"
	"github.com/aretw0/echolattice/pkg/domain"
	"github.com/aretw0/echolattice/pkg/registry"
)

// Version is the current release of the echolattice module.
const Version = "0.2.2"

// Engine is the high-level entry point for the EchoLattice library.
// It wraps the internal runtime and provides a simplified API for consumers.
type Engine struct {
	registry *registry.Registry
	pipeline []string
	rtOpts   []runtime.EngineOption
	rt       *runtime.Engine
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithRegistry injects a custom transform registry, bypassing the built-in
// transform set.
func WithRegistry(r *registry.Registry) Option {
	return func(e *Engine) {
		e.registry = r
	}
}

// WithPipeline sets the ordered transform pipeline
// (default Mirror, Invert, Symbolize, Abstract, Ground).
func WithPipeline(names []string) Option {
	return func(e *Engine) {
		e.pipeline = append([]string(nil), names...)
	}
}

// WithMaxDepth sets the maximum recursion depth (default 3).
func WithMaxDepth(depth int) Option {
	return func(e *Engine) {
		e.rtOpts = append(e.rtOpts, runtime.WithMaxDepth(depth))
	}
}

// WithMaxMinutes sets the advisory wall-clock budget in minutes (default 30).
func WithMaxMinutes(minutes int) Option {
	return func(e *Engine) {
		e.rtOpts = append(e.rtOpts, runtime.WithMaxMinutes(minutes))
	}
}

// WithBranching caps the number of transforms applied per expansion.
// Ground, when present in the pipeline, always keeps its slot.
func WithBranching(limit int) Option {
	return func(e *Engine) {
		e.rtOpts = append(e.rtOpts, runtime.WithBranching(limit))
	}
}

// WithRNGSeed makes branching selection reproducible. Without a seed, runs
// are valid but non-reproducible.
func WithRNGSeed(seed int64) Option {
	return func(e *Engine) {
		e.rtOpts = append(e.rtOpts, runtime.WithRNGSeed(seed))
	}
}

// WithNoveltyThreshold skips candidates whose novelty against their parent
// falls below the threshold (must be within [0,1]).
func WithNoveltyThreshold(threshold float64) Option {
	return func(e *Engine) {
		e.rtOpts = append(e.rtOpts, runtime.WithNoveltyThreshold(threshold))
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.rtOpts = append(e.rtOpts, runtime.WithLifecycleHooks(hooks))
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.rtOpts = append(e.rtOpts, runtime.WithLogger(logger))
	}
}

// WithClock injects the engine's time source (used by tests to exercise the
// session time budget deterministically).
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.rtOpts = append(e.rtOpts, runtime.WithClock(now))
	}
}

// New initializes a new EchoLattice Engine.
// By default it uses the built-in transform registry and the canonical
// pipeline. Configuration errors fail fast here.
func New(opts ...Option) (*Engine, error) {
	eng := &Engine{}
	for _, opt := range opts {
		opt(eng)
	}

	if eng.registry == nil {
		eng.registry = registry.Builtin()
	}
	if eng.pipeline == nil {
		eng.pipeline = domain.DefaultPipeline()
	}

	rt, err := runtime.NewEngine(eng.registry, eng.pipeline, eng.rtOpts...)
	if err != nil {
		return nil, err
	}
	eng.rt = rt
	return eng, nil
}

// Recurse runs one full session from the seed and returns the frozen graph.
// Any string is a valid seed, including the empty string.
func (e *Engine) Recurse(ctx context.Context, seed string, consent bool, safetyLevel string) (*domain.EchoGraph, error) {
	return e.rt.Recurse(ctx, seed, consent, safetyLevel)
}

// Registry returns the transform registry used by the engine.
func (e *Engine) Registry() *registry.Registry {
	return e.registry
}

// Pipeline returns a copy of the configured transform order.
func (e *Engine) Pipeline() []string {
	return append([]string(nil), e.pipeline...)
}
