// Package pool provides a bounded generic worker pool for concurrent task
// processing.
//
// A Pool holds only configuration; worker goroutines live for the duration of
// a single Process or ProcessStream call and are gone when it returns. Worker
// panics are recovered and surfaced as errors rather than crashing the
// process.
package pool

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/cwbudde/algo-perf/internal/cpu"
)

// ErrPanic wraps a recovered panic from a task function.
var ErrPanic = fmt.Errorf("pool: task panicked")

// Pool processes tasks of type T into results of type R with a bounded
// number of workers. The zero value is not usable; construct with [New].
type Pool[T, R any] struct {
	workers int
	queue   int
}

// Option configures a Pool.
type Option func(*settings)

type settings struct {
	workers int
	queue   int
}

// WithWorkers sets the number of concurrent workers.
// Defaults to one per core; values below 1 are ignored.
func WithWorkers(n int) Option {
	return func(s *settings) {
		if n >= 1 {
			s.workers = n
		}
	}
}

// WithQueueSize sets the buffer of the ProcessStream result channel.
// Defaults to the worker count; negative values are ignored.
func WithQueueSize(n int) Option {
	return func(s *settings) {
		if n >= 0 {
			s.queue = n
		}
	}
}

// New constructs a Pool.
func New[T, R any](opts ...Option) *Pool[T, R] {
	s := settings{workers: cpu.Cores(), queue: -1}

	for _, opt := range opts {
		if opt != nil {
			opt(&s)
		}
	}

	if s.queue < 0 {
		s.queue = s.workers
	}

	return &Pool[T, R]{workers: s.workers, queue: s.queue}
}

// Workers returns the configured worker count.
func (p *Pool[T, R]) Workers() int { return p.workers }

// Process runs fn over tasks with bounded concurrency and returns results in
// task order. The first error cancels outstanding work and is returned.
func (p *Pool[T, R]) Process(ctx context.Context, tasks []T, fn func(context.Context, T) (R, error)) ([]R, error) {
	results := make([]R, len(tasks))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(p.workers)

	for i, task := range tasks {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			r, err := safeCall(ctx, task, fn)
			if err != nil {
				return err
			}

			results[i] = r

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// Result pairs a task with its outcome on the streaming path.
type Result[T, R any] struct {
	Task  T
	Value R
	Err   error
}

// ProcessStream runs fn over tasks read from in. The returned channel is
// closed once in is drained or ctx is done. Unlike Process, per-task errors
// are delivered in the Result rather than cancelling the stream.
func (p *Pool[T, R]) ProcessStream(ctx context.Context, in <-chan T, fn func(context.Context, T) (R, error)) <-chan Result[T, R] {
	out := make(chan Result[T, R], p.queue)

	var wg sync.WaitGroup

	for w := 0; w < p.workers; w++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for {
				select {
				case <-ctx.Done():
					return
				case task, ok := <-in:
					if !ok {
						return
					}

					value, err := safeCall(ctx, task, fn)

					select {
					case out <- Result[T, R]{Task: task, Value: value, Err: err}:
					case <-ctx.Done():
						return
					}
				}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

// safeCall invokes fn and converts a panic into an error.
func safeCall[T, R any](ctx context.Context, task T, fn func(context.Context, T) (R, error)) (value R, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrPanic, r)
		}
	}()

	return fn(ctx, task)
}
