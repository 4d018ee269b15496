package suite

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-perf/workload"
)

func TestDefaultConfigValid(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())
}

func TestLoadConfigNoFile(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "suite.yaml")
	body := "runs: 25\nfib_n: 12\nmemo_backend: lru\nworkloads:\n  - fib\n  - interp\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 25, cfg.Runs)
	assert.Equal(t, 12, cfg.FibN)
	assert.Equal(t, workload.BackendLRU, cfg.MemoBackend)
	assert.Equal(t, []string{"fib", "interp"}, cfg.Workloads)

	// Untouched keys keep their defaults.
	assert.Equal(t, DefaultConfig().InterpSize, cfg.InterpSize)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "suite.yaml")
	require.NoError(t, os.WriteFile(path, []byte("runs: 25\n"), 0o600))

	t.Setenv("ALGOPERF_RUNS", "3")
	t.Setenv("ALGOPERF_MEMO_BACKEND", "ristretto")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Runs)
	assert.Equal(t, workload.BackendRistretto, cfg.MemoBackend)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		err    error
	}{
		{"zero interp size", func(c *Config) { c.InterpSize = 0 }, ErrBadConfig},
		{"negative mandel size", func(c *Config) { c.MandelSize = -1 }, ErrBadConfig},
		{"zero fft size", func(c *Config) { c.FFTSize = 0 }, ErrBadConfig},
		{"zero runs", func(c *Config) { c.Runs = 0 }, ErrBadConfig},
		{"negative warmup", func(c *Config) { c.Warmup = -1 }, ErrBadConfig},
		{"bad backend", func(c *Config) { c.MemoBackend = "disk" }, ErrBadConfig},
		{"bad workload", func(c *Config) { c.Workloads = []string{"quicksort"} }, ErrUnknownWorkload},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), tt.err)
		})
	}
}

func TestKnownWorkloadsCopy(t *testing.T) {
	names := KnownWorkloads()
	require.NotEmpty(t, names)

	names[0] = "mutated"
	assert.NotEqual(t, names[0], KnownWorkloads()[0])
}
