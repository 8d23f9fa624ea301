// Package runtime implements the recursion engine that expands a seed into
// an echo graph.
//
// Traversal is an explicit LIFO worklist rather than native call-stack
// recursion: each frame carries the node id, text, depth, and producing
// transform, and the per-run build state (node index, edge index, grounded
// flag) lives in a single session struct owned by one Recurse call. This
// keeps the termination conditions independently testable and bounds stack
// usage regardless of graph depth.
package runtime

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/aretw0/echolattice/pkg/domain"
	"github.com/aretw0/echolattice/pkg/novelty"
	"github.com/aretw0/echolattice/pkg/registry"
)

// Engine orchestrates recursive transform application over a seed text,
// consulting the registry and the novelty scorer. It is safe to run
// independent sessions concurrently: all mutable state is session-local.
type Engine struct {
	registry *registry.Registry
	pipeline []string

	maxDepth         int
	maxMinutes       int
	branching        int
	branchingSet     bool
	rngSeed          *int64
	noveltyThreshold *float64

	hooks  domain.LifecycleHooks
	logger *slog.Logger
	now    func() time.Time
}

// frame is one pending expansion on the worklist.
type frame struct {
	nodeID    string
	text      string
	depth     int
	transform string
}

// NewEngine creates an engine bound to a registry and an ordered transform
// pipeline. Configuration errors (unknown transform names, an invalid
// branching limit, an out-of-range novelty threshold) fail fast here rather
// than surfacing mid-session.
func NewEngine(reg *registry.Registry, pipeline []string, opts ...EngineOption) (*Engine, error) {
	if reg == nil {
		return nil, fmt.Errorf("registry is required")
	}
	if pipeline == nil {
		pipeline = domain.DefaultPipeline()
	}

	e := &Engine{
		registry:   reg,
		pipeline:   append([]string(nil), pipeline...),
		maxDepth:   3,
		maxMinutes: 30,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}

	for _, name := range e.pipeline {
		if !e.registry.Has(name) {
			return nil, fmt.Errorf("pipeline: %w: %s", domain.ErrUnknownTransform, name)
		}
	}
	if e.maxDepth < 0 {
		return nil, fmt.Errorf("max depth %d: %w", e.maxDepth, domain.ErrInvalidDepth)
	}
	if e.branchingSet && e.branching < 1 {
		return nil, fmt.Errorf("branching %d: %w", e.branching, domain.ErrInvalidBranching)
	}
	if e.noveltyThreshold != nil && (*e.noveltyThreshold < 0 || *e.noveltyThreshold > 1) {
		return nil, fmt.Errorf("novelty threshold %v: %w", *e.noveltyThreshold, domain.ErrInvalidNovelty)
	}

	return e, nil
}

// Recurse expands the seed into a frozen EchoGraph. Any string is a valid
// seed, including the empty string; boundary policy for empty seeds belongs
// to the CLI, not the engine. The returned graph is never mutated after the
// call completes.
func (e *Engine) Recurse(ctx context.Context, seed string, consent bool, safetyLevel string) (*domain.EchoGraph, error) {
	start := e.now()
	sess := newSession(domain.SessionMeta{
		UserConsent: consent,
		SafetyLevel: safetyLevel,
		MaxDepth:    e.maxDepth,
		MaxMinutes:  e.maxMinutes,
		StartedAt:   start,
	})
	rng := e.newRNG()

	root := &domain.EchoNode{
		ID:          uuid.NewString(),
		Text:        seed,
		Transform:   domain.TransformSeed,
		Depth:       0,
		Tags:        []string{"seed"},
		Timestamp:   e.now(),
		Occurrences: 1,
	}
	sess.addNode(root)

	stack := []frame{{nodeID: root.ID, text: seed, depth: 0, transform: domain.TransformSeed}}

	for len(stack) > 0 {
		// Budget checks happen between expansion steps only; a slow
		// transform is never interrupted mid-call.
		if ctx.Err() != nil {
			e.logger.Debug("session cancelled", "nodes", len(sess.graph.Nodes))
			break
		}
		if e.now().Sub(start) > time.Duration(e.maxMinutes)*time.Minute {
			e.logger.Debug("session time budget exhausted", "nodes", len(sess.graph.Nodes))
			break
		}

		fr := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		// Terminal transforms never expand, independent of the bounds.
		if e.registry.IsTerminal(fr.transform) {
			continue
		}
		if fr.depth >= e.maxDepth {
			continue
		}

		children, err := e.expand(ctx, sess, rng, fr)
		if err != nil {
			return nil, err
		}
		// Reverse push so the first selected transform is expanded first.
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, children[i])
		}
	}

	if e.hooks.OnSessionEnd != nil {
		e.hooks.OnSessionEnd(ctx, &domain.SessionEvent{
			EventBase: domain.EventBase{Timestamp: e.now(), Type: domain.EventSessionEnd},
			Nodes:     len(sess.graph.Nodes),
			Edges:     len(sess.graph.Edges),
			Grounded:  sess.grounded,
		})
	}
	return sess.graph, nil
}

// expand applies the selected transforms to one node and returns the frames
// of newly created non-terminal children.
func (e *Engine) expand(ctx context.Context, sess *session, rng *rand.Rand, fr frame) ([]frame, error) {
	var children []frame

	for _, name := range e.selectTransforms(rng) {
		// At most one Ground application per session, cross-branch.
		if name == domain.TransformGround && sess.grounded {
			continue
		}

		out, err := e.registry.Apply(name, fr.text)
		if err != nil {
			return nil, err
		}

		if e.noveltyThreshold != nil {
			if score := novelty.Score(fr.text, out); score < *e.noveltyThreshold {
				e.logger.Debug("candidate below novelty threshold",
					"transform", name, "score", score)
				if e.hooks.OnNoveltySkipped != nil {
					e.hooks.OnNoveltySkipped(ctx, &domain.NodeEvent{
						EventBase: domain.EventBase{Timestamp: e.now(), Type: domain.EventNoveltySkipped},
						Transform: name,
						Depth:     fr.depth + 1,
					})
				}
				continue
			}
		}

		// Session-wide dedup on (transform, exact text): converging
		// branches merge into the existing node instead of duplicating it.
		if existing := sess.lookup(name, out); existing != nil {
			existing.Occurrences++
			if fr.nodeID != existing.ID {
				sess.addEdge(fr.nodeID, existing.ID)
			}
			if e.hooks.OnDedupHit != nil {
				e.hooks.OnDedupHit(ctx, &domain.NodeEvent{
					EventBase:   domain.EventBase{Timestamp: e.now(), Type: domain.EventDedupHit},
					NodeID:      existing.ID,
					Transform:   name,
					Depth:       existing.Depth,
					Occurrences: existing.Occurrences,
				})
			}
			continue
		}

		node := &domain.EchoNode{
			ID:          uuid.NewString(),
			Text:        out,
			Transform:   name,
			Depth:       fr.depth + 1,
			ParentID:    fr.nodeID,
			Tags:        tagFor(name),
			Timestamp:   e.now(),
			Occurrences: 1,
		}
		sess.addNode(node)
		sess.addEdge(fr.nodeID, node.ID)
		if name == domain.TransformGround {
			sess.grounded = true
		}
		e.logger.Debug("node created", "transform", name, "depth", node.Depth)
		if e.hooks.OnNodeCreated != nil {
			e.hooks.OnNodeCreated(ctx, &domain.NodeEvent{
				EventBase:   domain.EventBase{Timestamp: e.now(), Type: domain.EventNodeCreated},
				NodeID:      node.ID,
				Transform:   name,
				Depth:       node.Depth,
				Occurrences: 1,
			})
		}

		if !e.registry.IsTerminal(name) {
			children = append(children, frame{
				nodeID:    node.ID,
				text:      out,
				depth:     node.Depth,
				transform: name,
			})
		}
	}
	return children, nil
}

func (e *Engine) newRNG() *rand.Rand {
	if e.rngSeed != nil {
		return rand.New(rand.NewSource(*e.rngSeed))
	}
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// selectTransforms picks the transforms to apply for one expansion step.
// Without a branching limit it returns all non-Ground pipeline transforms;
// with one, it samples max(branching-1, 0) non-Ground transforms without
// replacement (the -1 reserves a slot for Ground when it is in the
// pipeline). Ground is re-inserted at the end and is never subject to
// random exclusion.
func (e *Engine) selectTransforms(rng *rand.Rand) []string {
	groundInPipeline := false
	var nonGround []string
	for _, name := range e.pipeline {
		if name == domain.TransformGround {
			groundInPipeline = true
			continue
		}
		nonGround = append(nonGround, name)
	}

	selected := nonGround
	if e.branchingSet {
		k := e.branching
		if groundInPipeline {
			k--
		}
		if k < 0 {
			k = 0
		}
		if k < len(nonGround) {
			selected = sample(rng, nonGround, k)
		}
	}

	inSelected := make(map[string]bool, len(selected))
	for _, name := range selected {
		inSelected[name] = true
	}

	var ordered []string
	for _, name := range e.pipeline {
		if name != domain.TransformGround && inSelected[name] {
			ordered = append(ordered, name)
		}
	}
	if groundInPipeline {
		ordered = append(ordered, domain.TransformGround)
	}
	return ordered
}

// sample draws k elements from names without replacement.
func sample(rng *rand.Rand, names []string, k int) []string {
	perm := rng.Perm(len(names))
	picked := make([]string, 0, k)
	for _, idx := range perm[:k] {
		picked = append(picked, names[idx])
	}
	return picked
}

func tagFor(name string) []string {
	return []string{strings.ToLower(name)}
}
