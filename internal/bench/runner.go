package bench

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/aretw0/echolattice"
	"github.com/aretw0/echolattice/pkg/observability"
	"github.com/aretw0/echolattice/pkg/policy"
)

// Result is one JSONL row of the benchmark output.
type Result struct {
	Seed     string `json:"seed"`
	Category string `json:"category"`
	Config   Config `json:"config"`

	Structure struct {
		Nodes      int     `json:"nodes"`
		Edges      int     `json:"edges"`
		DedupSaved float64 `json:"dedup_saved"`
	} `json:"structure"`

	Loopiness struct {
		LoopPatternHits  LoopPatternHits `json:"loop_pattern_hits"`
		InvertNestingMax int             `json:"invert_nesting_max"`
	} `json:"loopiness"`

	Ground struct {
		GroundReached bool    `json:"ground_reached"`
		GroundHash    *string `json:"ground_hash"`
		GroundChannel *string `json:"ground_channel"`
		GroundPath    string  `json:"ground_path"`
	} `json:"ground"`

	Policy policy.Record `json:"policy"`

	// HumanClosureRating is reserved for manual review; always null here.
	HumanClosureRating *int `json:"human_closure_rating"`
}

// Runner executes the benchmark corpus and writes the result artifacts.
type Runner struct {
	logger  *slog.Logger
	metrics *observability.Metrics
	gatherer prometheus.Gatherer
}

// NewRunner creates a benchmark runner with its own metric registry.
func NewRunner(logger *slog.Logger) *Runner {
	reg := prometheus.NewRegistry()
	return &Runner{
		logger:   logger,
		metrics:  observability.New(reg),
		gatherer: reg,
	}
}

// Collect runs every seed of the corpus under every configuration and
// returns the rows in corpus order. Deterministic: the RNG seed is fixed
// and nothing depends on wall-clock beyond timestamps.
func (r *Runner) Collect(ctx context.Context) ([]Result, error) {
	var rows []Result
	for _, sc := range Corpus() {
		for _, cfg := range Configs() {
			row, err := r.runOne(ctx, sc, cfg)
			if err != nil {
				return nil, fmt.Errorf("benchmark %q: %w", sc.Seed, err)
			}
			rows = append(rows, row)
		}
	}
	return rows, nil
}

func (r *Runner) runOne(ctx context.Context, sc SeedCase, cfg Config) (Result, error) {
	eng, err := echolattice.New(
		echolattice.WithMaxDepth(cfg.Depth),
		echolattice.WithBranching(cfg.Branching),
		echolattice.WithRNGSeed(cfg.RNGSeed),
		echolattice.WithNoveltyThreshold(cfg.Novelty),
		echolattice.WithLifecycleHooks(r.metrics.Hooks()),
		echolattice.WithLogger(r.logger),
	)
	if err != nil {
		return Result{}, err
	}

	graph, err := eng.Recurse(ctx, sc.Seed, true, "light")
	if err != nil {
		return Result{}, err
	}

	rep := Compute(graph)
	decision := policy.Decide(rep.PolicyInput(), nil)
	record := policy.NewRecord(decision, "benchmark")

	row := Result{
		Seed:     sc.Seed,
		Category: sc.Category,
		Config:   cfg,
		Policy:   record,
	}
	row.Structure.Nodes = len(graph.Nodes)
	row.Structure.Edges = len(graph.Edges)
	row.Structure.DedupSaved = rep.DedupSaved
	row.Loopiness.LoopPatternHits = rep.LoopPatternHits
	row.Loopiness.InvertNestingMax = rep.InvertNestingMax
	row.Ground.GroundReached = rep.GroundReached
	row.Ground.GroundPath = rep.GroundPath
	if rep.GroundReached {
		hash := rep.GroundHash
		channel := rep.GroundChannel
		row.Ground.GroundHash = &hash
		row.Ground.GroundChannel = &channel
	}

	r.logger.Debug("benchmark session complete",
		"seed", sc.Seed, "depth", cfg.Depth,
		"nodes", row.Structure.Nodes, "action", decision.Action)
	return row, nil
}

// Run collects the corpus and writes bench_results.jsonl plus
// bench_summary.md to the given paths.
func (r *Runner) Run(ctx context.Context, resultsPath, summaryPath string) error {
	rows, err := r.Collect(ctx)
	if err != nil {
		return err
	}

	if err := writeJSONL(resultsPath, rows); err != nil {
		return fmt.Errorf("write results: %w", err)
	}
	if err := os.WriteFile(summaryPath, []byte(r.summaryMarkdown(rows)), 0o644); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}
	return nil
}

func writeJSONL(path string, rows []Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	enc := json.NewEncoder(w)
	for _, row := range rows {
		if err := enc.Encode(row); err != nil {
			return err
		}
	}
	return w.Flush()
}

// summaryMarkdown renders the per-session table plus the engine counters
// gathered over the whole benchmark.
func (r *Runner) summaryMarkdown(rows []Result) string {
	var sb strings.Builder
	sb.WriteString("# Benchmark Summary\n\n")
	sb.WriteString(fmt.Sprintf("Sessions: %d\n\n", len(rows)))

	sb.WriteString("| Seed | Category | Depth | Novelty | Nodes | Dedup Saved | Grounded | Action | Severity |\n")
	sb.WriteString("|---|---|---|---|---|---|---|---|---|\n")
	for _, row := range rows {
		sb.WriteString(fmt.Sprintf("| %s | %s | %d | %.2f | %d | %.2f | %v | %s | %.2f |\n",
			row.Seed, row.Category, row.Config.Depth, row.Config.Novelty,
			row.Structure.Nodes, row.Structure.DedupSaved,
			row.Ground.GroundReached, row.Policy.Decision.Action,
			row.Policy.Decision.Severity))
	}

	sb.WriteString("\n## Engine Counters\n\n")
	families, err := r.gatherer.Gather()
	if err != nil {
		sb.WriteString(fmt.Sprintf("(gather failed: %v)\n", err))
		return sb.String()
	}
	for _, fam := range families {
		total := 0.0
		for _, m := range fam.GetMetric() {
			total += m.GetCounter().GetValue()
		}
		sb.WriteString(fmt.Sprintf("- %s: %.0f\n", fam.GetName(), total))
	}
	return sb.String()
}
