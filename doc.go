/*
Package echolattice is a safe-first recursion engine that transforms a seed
text through canonical transforms (Mirror, Invert, Symbolize, Abstract,
Ground) to produce an echo map: a DAG of derived text nodes used to explore
reframings of an idea.

It separates the graph-building engine (Core) from rendering and I/O
(Adapters). The engine owns the recursion, per-session deduplication,
novelty gating, and depth/time bounding; the host application handles seed
entry, file output, and presentation.

# Key Features

  - Deterministic Sampling: Given the same RNG seed and configuration, a
    session reproduces the same structure.
  - Session-Wide Dedup: Repeated (transform, text) productions converge
    into one node with an occurrence counter, never a forest of duplicates.
  - Terminal Transforms: Ground and Abstract close their branches; Ground
    fires at most once per session.
  - Swappable Registry: Transforms live in an explicit registry object,
    injectable per test or per host.

# Usage

	package main

	import (
		"context"
		"fmt"
		"log"

		"github.com/aretw0/echolattice"
	)

	func main() {
		eng, err := echolattice.New(
			echolattice.WithMaxDepth(3),
			echolattice.WithRNGSeed(42),
		)
		if err != nil {
			log.Fatal(err)
		}

		graph, err := eng.Recurse(context.Background(), "Seed Bearer", true, "light")
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(len(graph.Nodes), "nodes")
	}

A secondary, loosely coupled policy evaluator lives in pkg/policy: it grades
the structural metrics of a completed session (computed by internal/bench)
and recommends CONTINUE, PRUNE, GROUND_NOW, or DEFER.
*/
package echolattice
