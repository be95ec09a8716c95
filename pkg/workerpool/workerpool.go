// Package workerpool runs bounded fan-out over a slice of work items.
package workerpool

import (
	"context"
	"sync"
)

// Process calls process for every item on at most workerCount goroutines.
// The first error cancels the shared context and is returned once all
// workers have exited. Items not yet handed out when that happens are skipped.
func Process[T any](
	ctx context.Context,
	workerCount int,
	items []T,
	process func(context.Context, T) error,
) error {
	if len(items) == 0 {
		return ctx.Err()
	}
	workerCount = min(max(workerCount, 1), len(items))

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		once     sync.Once
		firstErr error
		wg       sync.WaitGroup
	)
	fail := func(err error) {
		once.Do(func() {
			firstErr = err
			cancel()
		})
	}

	tasks := make(chan T)
	for range workerCount {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for item := range tasks {
				if ctx.Err() != nil {
					continue
				}
				if err := process(ctx, item); err != nil {
					fail(err)
				}
			}
		}()
	}

feed:
	for _, item := range items {
		select {
		case <-ctx.Done():
			break feed
		case tasks <- item:
		}
	}
	close(tasks)
	wg.Wait()

	if firstErr != nil {
		return firstErr
	}
	return ctx.Err()
}

// Map runs fn over items on workerCount workers and returns the results in
// input order. The first error cancels the remaining work.
func Map[T, R any](
	ctx context.Context,
	workerCount int,
	items []T,
	fn func(context.Context, T) (R, error),
) ([]R, error) {
	positions := make([]int, len(items))
	for i := range positions {
		positions[i] = i
	}

	out := make([]R, len(items))
	err := Process(ctx, workerCount, positions, func(ctx context.Context, pos int) error {
		r, err := fn(ctx, items[pos])
		if err != nil {
			return err
		}
		out[pos] = r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
