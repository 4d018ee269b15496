package suite

import (
	"errors"
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	env "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/cwbudde/algo-perf/workload"
)

// envPrefix namespaces the environment overrides, e.g. ALGOPERF_RUNS=25.
const envPrefix = "ALGOPERF_"

// Errors returned by configuration loading and validation.
var (
	ErrBadConfig       = errors.New("suite: invalid configuration")
	ErrUnknownWorkload = errors.New("suite: unknown workload")
)

// knownWorkloads lists the selectable workload names.
var knownWorkloads = []string{"interp", "mandel", "fft", "fib", "pool-spawn"}

// Config holds the tunables for a suite run. Keys are flat, so the YAML file
// and ALGOPERF_* environment variables map one to one.
type Config struct {
	InterpSize    int      `koanf:"interp_size"`
	MandelSize    int      `koanf:"mandel_size"`
	MandelMaxIter int      `koanf:"mandel_max_iter"`
	FFTSize       int      `koanf:"fft_size"`
	FibN          int      `koanf:"fib_n"`
	PoolTasks     int      `koanf:"pool_tasks"`
	Workers       int      `koanf:"workers"`
	Runs          int      `koanf:"runs"`
	Warmup        int      `koanf:"warmup"`
	MemoBackend   string   `koanf:"memo_backend"`
	Workloads     []string `koanf:"workloads"`
}

// DefaultConfig returns sizes that finish in seconds on commodity hardware.
func DefaultConfig() Config {
	return Config{
		InterpSize:    1 << 20,
		MandelSize:    512,
		MandelMaxIter: 200,
		FFTSize:       1 << 16,
		FibN:          28,
		PoolTasks:     10000,
		Workers:       0, // one per core
		Runs:          10,
		Warmup:        1,
		MemoBackend:   workload.BackendMap,
	}
}

// LoadConfig builds a Config from defaults, an optional YAML file, and
// ALGOPERF_-prefixed environment variables, in increasing precedence.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	k := koanf.New(".")

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return Config{}, fmt.Errorf("suite: loading config %s: %w", path, err)
		}
	}

	err := k.Load(env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(key, value string) (string, any) {
			// Keys are flat; lowercase the remainder of the variable name.
			return strings.ToLower(strings.TrimPrefix(key, envPrefix)), value
		},
	}), nil)
	if err != nil {
		return Config{}, fmt.Errorf("suite: loading environment: %w", err)
	}

	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("suite: unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks ranges and workload names.
func (c Config) Validate() error {
	switch {
	case c.InterpSize <= 0:
		return fmt.Errorf("%w: interp_size must be positive", ErrBadConfig)
	case c.MandelSize <= 0 || c.MandelMaxIter <= 0:
		return fmt.Errorf("%w: mandel dimensions must be positive", ErrBadConfig)
	case c.FFTSize <= 0:
		return fmt.Errorf("%w: fft_size must be positive", ErrBadConfig)
	case c.FibN <= 0:
		return fmt.Errorf("%w: fib_n must be positive", ErrBadConfig)
	case c.PoolTasks <= 0:
		return fmt.Errorf("%w: pool_tasks must be positive", ErrBadConfig)
	case c.Runs < 1:
		return fmt.Errorf("%w: runs must be at least 1", ErrBadConfig)
	case c.Warmup < 0:
		return fmt.Errorf("%w: warmup must not be negative", ErrBadConfig)
	}

	switch c.MemoBackend {
	case workload.BackendMap, workload.BackendLRU, workload.BackendRistretto:
	default:
		return fmt.Errorf("%w: memo_backend %q", ErrBadConfig, c.MemoBackend)
	}

	for _, name := range c.Workloads {
		if !isKnownWorkload(name) {
			return fmt.Errorf("%w: %q", ErrUnknownWorkload, name)
		}
	}

	return nil
}

func isKnownWorkload(name string) bool {
	for _, known := range knownWorkloads {
		if name == known {
			return true
		}
	}

	return false
}

// KnownWorkloads returns the selectable workload names.
func KnownWorkloads() []string {
	return append([]string(nil), knownWorkloads...)
}
