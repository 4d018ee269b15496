package workload

import (
	"context"
	"sync"

	"github.com/cwbudde/algo-perf/pool"
)

// PoolSpawn pushes trivial tasks through the worker pool and through one
// goroutine per task, exposing pure scheduling overhead.
type PoolSpawn struct {
	Tasks   int
	Workers int
}

// NewPoolSpawn constructs the scheduling-overhead workload.
func NewPoolSpawn(tasks, workers int) *PoolSpawn {
	return &PoolSpawn{Tasks: tasks, Workers: workers}
}

// Name implements Workload.
func (w *PoolSpawn) Name() string { return "pool-spawn" }

// Variants implements Workload.
func (w *PoolSpawn) Variants() ([]Variant, error) {
	if w.Tasks <= 0 {
		return nil, ErrBadSize
	}

	opts := []pool.Option{}
	if w.Workers > 0 {
		opts = append(opts, pool.WithWorkers(w.Workers))
	}

	p := pool.New[struct{}, struct{}](opts...)
	tasks := make([]struct{}, w.Tasks)

	noop := func(context.Context, struct{}) (struct{}, error) {
		return struct{}{}, nil
	}

	return []Variant{
		{
			Name: "goroutine-per-task",
			Run: func(context.Context) error {
				var wg sync.WaitGroup

				for i := 0; i < w.Tasks; i++ {
					wg.Add(1)

					go func() { wg.Done() }()
				}

				wg.Wait()

				return nil
			},
		},
		{
			Name: "worker-pool",
			Run: func(ctx context.Context) error {
				_, err := p.Process(ctx, tasks, noop)
				return err
			},
		},
	}, nil
}
