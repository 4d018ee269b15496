package suite

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// smallConfig keeps the measured work tiny so the suite tests stay fast.
func smallConfig() Config {
	cfg := DefaultConfig()
	cfg.InterpSize = 256
	cfg.MandelSize = 16
	cfg.MandelMaxIter = 20
	cfg.FFTSize = 64
	cfg.FibN = 10
	cfg.PoolTasks = 32
	cfg.Runs = 2
	cfg.Warmup = 0

	return cfg
}

func TestNewRunnerRejectsBadConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Runs = 0

	_, err := NewRunner(cfg, nil)
	assert.ErrorIs(t, err, ErrBadConfig)
}

func TestRunnerWorkloadSelection(t *testing.T) {
	cfg := smallConfig()
	cfg.Workloads = []string{"fib", "interp"}

	r, err := NewRunner(cfg, nil)
	require.NoError(t, err)

	ws := r.Workloads()
	require.Len(t, ws, 2)

	// Selection keeps the canonical order, not the config order.
	assert.Equal(t, "interp", ws[0].Name())
	assert.Equal(t, "fib", ws[1].Name())
}

func TestRunnerAllWorkloadsByDefault(t *testing.T) {
	r, err := NewRunner(smallConfig(), nil)
	require.NoError(t, err)

	var names []string
	for _, w := range r.Workloads() {
		names = append(names, w.Name())
	}

	assert.Equal(t, KnownWorkloads(), names)
}

func TestRunnerRun(t *testing.T) {
	cfg := smallConfig()
	cfg.Workloads = []string{"fib", "pool-spawn"}

	r, err := NewRunner(cfg, nil)
	require.NoError(t, err)

	reports, err := r.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, reports, 2)

	for _, report := range reports {
		results := report.Results()
		require.NotEmpty(t, results)

		for _, res := range results {
			assert.Equal(t, cfg.Runs, res.Result.Runs)
			assert.Positive(t, res.Result.Mean)
		}

		var sb strings.Builder
		require.NoError(t, report.WriteTable(&sb))
		assert.Contains(t, sb.String(), "SPEEDUP")
	}
}

func TestRunnerRunCancelled(t *testing.T) {
	r, err := NewRunner(smallConfig(), nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = r.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
