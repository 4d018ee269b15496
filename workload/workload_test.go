package workload_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-perf/workload"
)

func runAll(t *testing.T, w workload.Workload) {
	t.Helper()

	variants, err := w.Variants()
	require.NoError(t, err)
	require.NotEmpty(t, variants)

	ctx := context.Background()

	for _, v := range variants {
		require.NotEmpty(t, v.Name)
		require.NoError(t, v.Run(ctx), "variant %s", v.Name)

		// Variants must be repeatable.
		require.NoError(t, v.Run(ctx), "variant %s rerun", v.Name)
	}
}

func TestInterpVariants(t *testing.T) {
	w := workload.NewInterp(2048)

	variants, err := w.Variants()
	require.NoError(t, err)

	assert.Equal(t, "scalar", variants[0].Name, "scalar must be the baseline")
	assert.GreaterOrEqual(t, len(variants), 6)

	runAll(t, w)
}

func TestInterpBadSize(t *testing.T) {
	_, err := workload.NewInterp(0).Variants()
	assert.ErrorIs(t, err, workload.ErrBadSize)
}

func TestMandelVariants(t *testing.T) {
	runAll(t, workload.NewMandel(32, 50, 2))
}

func TestFFTVariants(t *testing.T) {
	runAll(t, workload.NewFFT(256))
}

func TestFFTRejectsOddSize(t *testing.T) {
	_, err := workload.NewFFT(1000).Variants()
	assert.ErrorIs(t, err, workload.ErrNotPowerOfTwo)
}

func TestFibVariants(t *testing.T) {
	for _, backend := range []string{workload.BackendMap, workload.BackendLRU, workload.BackendRistretto} {
		t.Run(backend, func(t *testing.T) {
			runAll(t, workload.NewFib(20, backend))
		})
	}
}

func TestFibUnknownBackend(t *testing.T) {
	_, err := workload.NewFib(20, "redis").Variants()
	assert.ErrorIs(t, err, workload.ErrBadBackend)
}

func TestFibRangeGuard(t *testing.T) {
	for _, n := range []int{0, -1, 94, 200} {
		_, err := workload.NewFib(n, workload.BackendMap).Variants()
		assert.ErrorIs(t, err, workload.ErrBadSize, "n=%d", n)
	}
}

func TestPoolSpawnVariants(t *testing.T) {
	runAll(t, workload.NewPoolSpawn(500, 4))
}

func TestWorkloadNames(t *testing.T) {
	names := map[workload.Workload]string{
		workload.NewInterp(8):        "interp",
		workload.NewMandel(8, 10, 1): "mandel",
		workload.NewFFT(64):          "fft",
		workload.NewFib(10, ""):      "fib",
		workload.NewPoolSpawn(1, 1):  "pool-spawn",
	}

	for w, want := range names {
		assert.Equal(t, want, w.Name())
	}
}

func TestVariantErrorPropagation(t *testing.T) {
	// A cancelled context must surface from context-aware variants.
	w := workload.NewMandel(64, 50, 2)

	variants, err := w.Variants()
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var parallel workload.Variant

	for _, v := range variants {
		if v.Name == "parallel" {
			parallel = v
		}
	}

	require.NotNil(t, parallel.Run)
	assert.True(t, errors.Is(parallel.Run(ctx), context.Canceled))
}
