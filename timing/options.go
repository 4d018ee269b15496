package timing

import "time"

// Config defines the measurement loop parameters.
type Config struct {
	Runs    int
	Warmup  int
	MinTime time.Duration
}

// DefaultConfig returns the default measurement parameters.
func DefaultConfig() Config {
	return Config{
		Runs:   10,
		Warmup: 1,
	}
}

// Option mutates the measurement configuration.
type Option func(*config)

type config struct {
	runs    int
	warmup  int
	minTime time.Duration
}

// WithRuns sets the number of timed runs. Values below 1 are ignored.
func WithRuns(n int) Option {
	return func(c *config) {
		if n >= 1 {
			c.runs = n
		}
	}
}

// WithWarmup sets the number of untimed warmup rounds.
// Negative values are ignored; zero disables warmup.
func WithWarmup(n int) Option {
	return func(c *config) {
		if n >= 0 {
			c.warmup = n
		}
	}
}

// WithMinTime keeps measuring beyond the run count until the accumulated
// timed duration reaches d. Non-positive values are ignored.
func WithMinTime(d time.Duration) Option {
	return func(c *config) {
		if d > 0 {
			c.minTime = d
		}
	}
}

func applyOptions(opts ...Option) config {
	def := DefaultConfig()
	c := config{runs: def.Runs, warmup: def.Warmup, minTime: def.MinTime}

	for _, opt := range opts {
		if opt != nil {
			opt(&c)
		}
	}

	return c
}
