// Package timing measures wall-clock execution of functions and summarizes
// repeated runs for comparison across implementations.
//
// The pattern is warmup-then-measure: a few untimed warmup rounds absorb
// one-time costs (allocation, cache population), then timed runs are
// collected and reduced to summary statistics.
package timing

import (
	"errors"
	"math"
	"sort"
	"time"
)

// ErrNilFunc is returned when Measure is called without a function.
var ErrNilFunc = errors.New("timing: nil function")

// Result summarizes the timed runs of one function.
type Result struct {
	Runs   int
	Total  time.Duration
	Min    time.Duration
	Max    time.Duration
	Mean   time.Duration
	Median time.Duration
	StdDev time.Duration
}

// Throughput returns bytes per second based on the mean run time.
// Returns 0 for a zero mean.
func (r Result) Throughput(bytes int64) float64 {
	if r.Mean <= 0 {
		return 0
	}

	return float64(bytes) / r.Mean.Seconds()
}

// Measure runs fn repeatedly and summarizes the wall-clock samples.
// The first error from fn, including during warmup, aborts the measurement.
func Measure(fn func() error, opts ...Option) (Result, error) {
	if fn == nil {
		return Result{}, ErrNilFunc
	}

	cfg := applyOptions(opts...)

	for i := 0; i < cfg.warmup; i++ {
		if err := fn(); err != nil {
			return Result{}, err
		}
	}

	var samples []time.Duration

	var total time.Duration

	for len(samples) < cfg.runs || total < cfg.minTime {
		start := time.Now()

		if err := fn(); err != nil {
			return Result{}, err
		}

		d := time.Since(start)
		samples = append(samples, d)
		total += d
	}

	return summarize(samples), nil
}

// summarize reduces samples to a Result. Mean and standard deviation use
// Welford's online algorithm for numerical stability.
func summarize(samples []time.Duration) Result {
	n := len(samples)

	var (
		mean  float64
		m2    float64
		total time.Duration
		minD  = samples[0]
		maxD  = samples[0]
	)

	for i, d := range samples {
		total += d

		if d < minD {
			minD = d
		}

		if d > maxD {
			maxD = d
		}

		// Welford update.
		x := float64(d)
		delta := x - mean
		mean += delta / float64(i+1)
		m2 += delta * (x - mean)
	}

	variance := m2 / float64(n)

	sorted := append([]time.Duration(nil), samples...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	var median time.Duration
	if n%2 == 1 {
		median = sorted[n/2]
	} else {
		median = (sorted[n/2-1] + sorted[n/2]) / 2
	}

	return Result{
		Runs:   n,
		Total:  total,
		Min:    minD,
		Max:    maxD,
		Mean:   time.Duration(mean),
		Median: median,
		StdDev: time.Duration(math.Sqrt(variance)),
	}
}
