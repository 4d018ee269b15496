// Package suite runs the configured workloads and collects timing reports.
package suite

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/cwbudde/algo-perf/timing"
	"github.com/cwbudde/algo-perf/workload"
)

// Runner executes a set of workloads and measures every variant.
type Runner struct {
	cfg Config
	log *zap.Logger
}

// NewRunner validates the configuration and builds a runner. A nil logger
// disables logging.
func NewRunner(cfg Config, logger *zap.Logger) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if logger == nil {
		logger = zap.NewNop()
	}

	return &Runner{cfg: cfg, log: logger}, nil
}

// Workloads builds the workload set selected by the configuration. An empty
// selection means all of them, in the stable order of KnownWorkloads.
func (r *Runner) Workloads() []workload.Workload {
	all := map[string]workload.Workload{
		"interp":     workload.NewInterp(r.cfg.InterpSize),
		"mandel":     workload.NewMandel(r.cfg.MandelSize, r.cfg.MandelMaxIter, r.cfg.Workers),
		"fft":        workload.NewFFT(r.cfg.FFTSize),
		"fib":        workload.NewFib(r.cfg.FibN, r.cfg.MemoBackend),
		"pool-spawn": workload.NewPoolSpawn(r.cfg.PoolTasks, r.cfg.Workers),
	}

	selected := r.cfg.Workloads
	if len(selected) == 0 {
		selected = knownWorkloads
	}

	var out []workload.Workload

	for _, name := range knownWorkloads {
		if !contains(selected, name) {
			continue
		}

		out = append(out, all[name])
	}

	return out
}

// Run measures every variant of every selected workload and returns one
// report per workload. Cancelling the context stops between measurements.
func (r *Runner) Run(ctx context.Context) ([]*timing.Report, error) {
	var reports []*timing.Report

	for _, w := range r.Workloads() {
		report, err := r.runWorkload(ctx, w)
		if err != nil {
			return nil, err
		}

		reports = append(reports, report)
	}

	return reports, nil
}

func (r *Runner) runWorkload(ctx context.Context, w workload.Workload) (*timing.Report, error) {
	variants, err := w.Variants()
	if err != nil {
		return nil, fmt.Errorf("suite: workload %s: %w", w.Name(), err)
	}

	r.log.Info("running workload",
		zap.String("workload", w.Name()),
		zap.Int("variants", len(variants)),
		zap.Int("runs", r.cfg.Runs))

	report := timing.NewReport(w.Name())

	for _, v := range variants {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		res, err := timing.Measure(func() error {
			return v.Run(ctx)
		}, timing.WithRuns(r.cfg.Runs), timing.WithWarmup(r.cfg.Warmup))
		if err != nil {
			return nil, fmt.Errorf("suite: %s/%s: %w", w.Name(), v.Name, err)
		}

		r.log.Debug("variant measured",
			zap.String("workload", w.Name()),
			zap.String("variant", v.Name),
			zap.Duration("median", res.Median),
			zap.Duration("mean", res.Mean))

		report.Add(v.Name, res)
	}

	return report, nil
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}

	return false
}
