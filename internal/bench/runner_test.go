package bench

import (
	"bufio"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/echolattice/internal/logging"
)

func TestRunner_Collect(t *testing.T) {
	runner := NewRunner(logging.NewNop())

	rows, err := runner.Collect(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, len(Corpus())*len(Configs()))

	assert.Equal(t, "Seed Bearer", rows[0].Seed)
	assert.Equal(t, "identity", rows[0].Category)
	assert.Equal(t, Configs()[0], rows[0].Config)

	for _, row := range rows {
		assert.Nil(t, row.HumanClosureRating)
		assert.Equal(t, "Law7Gate-1.0", row.Policy.Version)
		assert.Equal(t, "benchmark", row.Policy.Mode)
		assert.Positive(t, row.Structure.Nodes)
		if row.Ground.GroundReached {
			require.NotNil(t, row.Ground.GroundHash)
			require.NotNil(t, row.Ground.GroundChannel)
			assert.True(t, strings.HasPrefix(row.Ground.GroundPath, "Seed>"))
		} else {
			assert.Nil(t, row.Ground.GroundHash)
			assert.Nil(t, row.Ground.GroundChannel)
		}
	}
}

func TestRunner_CollectDeterministic(t *testing.T) {
	first, err := NewRunner(logging.NewNop()).Collect(context.Background())
	require.NoError(t, err)
	second, err := NewRunner(logging.NewNop()).Collect(context.Background())
	require.NoError(t, err)

	require.Len(t, second, len(first))
	for i := range first {
		assert.Equal(t, first[i].Structure, second[i].Structure, "row %d", i)
		assert.Equal(t, first[i].Loopiness, second[i].Loopiness, "row %d", i)
		assert.Equal(t, first[i].Ground, second[i].Ground, "row %d", i)
	}
}

func TestRunner_RunWritesArtifacts(t *testing.T) {
	dir := t.TempDir()
	results := filepath.Join(dir, "bench_results.jsonl")
	summary := filepath.Join(dir, "bench_summary.md")

	runner := NewRunner(logging.NewNop())
	require.NoError(t, runner.Run(context.Background(), results, summary))

	f, err := os.Open(results)
	require.NoError(t, err)
	defer f.Close()

	lines := 0
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 1024*1024), 1024*1024)
	for scanner.Scan() {
		var row Result
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &row))
		lines++
	}
	require.NoError(t, scanner.Err())
	assert.Equal(t, len(Corpus())*len(Configs()), lines)

	md, err := os.ReadFile(summary)
	require.NoError(t, err)
	assert.Contains(t, string(md), "# Benchmark Summary")
	assert.Contains(t, string(md), "echolattice_nodes_created_total")
}
