// Package cli implements the command logic behind cmd/echolattice. It owns
// everything the engine treats as boundary concerns: seed resolution,
// config files, artifact writing, and the post-session cooldown.
package cli

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aretw0/echolattice"
	"github.com/aretw0/echolattice/internal/logging"
	"github.com/aretw0/echolattice/internal/presentation/render"
	"github.com/aretw0/echolattice/internal/presentation/tui"
)

// RunOptions contains all the configuration for the run command.
type RunOptions struct {
	Seed       string // from --seed
	SeedPos    string // positional alternative
	Depth      int
	Minutes    int
	Branching  int // 0 means no cap
	RNGSeed    int64
	RNGSeedSet bool
	Novelty    float64
	NoveltySet bool
	Consent    bool
	Clinical   bool
	Debug      bool

	ConfigPath string
	OutJSON    string
	OutMD      string
	OutSummary string
}

// Execute handles the run command: resolve the seed, run one session, write
// the three artifacts, and close with a cooldown message. A missing seed is
// a normal exit, not an error.
func (o RunOptions) Execute() error {
	logger := logging.ForDebug(o.Debug)

	cfg, err := LoadConfig(o.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	o = cfg.applyTo(o)

	seed := ResolveSeed(o.Seed, o.SeedPos)
	if seed == "" {
		fmt.Fprintln(os.Stderr, "No seed provided. Exiting.")
		return nil
	}

	if isInteractive() {
		tui.PrintBanner(echolattice.Version)
	}

	engineOpts := []echolattice.Option{
		echolattice.WithMaxDepth(o.Depth),
		echolattice.WithMaxMinutes(o.Minutes),
		echolattice.WithLogger(logger),
	}
	if len(cfg.Pipeline) > 0 {
		engineOpts = append(engineOpts, echolattice.WithPipeline(cfg.Pipeline))
	}
	if o.Branching > 0 {
		engineOpts = append(engineOpts, echolattice.WithBranching(o.Branching))
	}
	if o.RNGSeedSet {
		engineOpts = append(engineOpts, echolattice.WithRNGSeed(o.RNGSeed))
	}
	if o.NoveltySet {
		engineOpts = append(engineOpts, echolattice.WithNoveltyThreshold(o.Novelty))
	}

	eng, err := echolattice.New(engineOpts...)
	if err != nil {
		return fmt.Errorf("error initializing engine: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	safety := "light"
	if o.Clinical {
		safety = "clinical"
	}
	graph, err := eng.Recurse(ctx, seed, o.Consent, safety)
	if err != nil {
		return fmt.Errorf("session failed: %w", err)
	}
	logger.Info("session complete", "nodes", len(graph.Nodes), "edges", len(graph.Edges))

	jsonDoc, err := render.JSON(graph)
	if err != nil {
		return fmt.Errorf("render json: %w", err)
	}
	summary := render.Summary(graph)

	artifacts := []struct {
		path    string
		content string
	}{
		{o.OutJSON, jsonDoc},
		{o.OutMD, render.MarkdownTree(graph)},
		{o.OutSummary, summary},
	}
	for _, a := range artifacts {
		if err := os.WriteFile(a.path, []byte(a.content), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", a.path, err)
		}
	}

	fmt.Printf("Saved: %s, %s, and %s\n", o.OutJSON, o.OutMD, o.OutSummary)

	if isInteractive() {
		renderMD := tui.NewRenderer()
		if out, err := renderMD(summary); err == nil {
			fmt.Print(out)
		}
	}

	cooldownRNG := rand.New(rand.NewSource(o.cooldownSeed()))
	fmt.Println(PickCooldown(cooldownRNG, o.Clinical))
	return nil
}

// cooldownSeed reuses the session RNG seed so the closing message is as
// reproducible as the session itself.
func (o RunOptions) cooldownSeed() int64 {
	if o.RNGSeedSet {
		return o.RNGSeed
	}
	return time.Now().UnixNano()
}
