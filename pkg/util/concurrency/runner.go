package concurrency

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// ForEach runs the given function for each job, up to concurrency at a time.
// The first error aborts the remaining jobs and is returned.
func ForEach[T any](ctx context.Context, jobs []T, concurrency int, fn func(ctx context.Context, job T) error) error {
	if concurrency <= 0 || concurrency > len(jobs) {
		concurrency = len(jobs)
	}

	ch := make(chan T, len(jobs))
	for _, j := range jobs {
		ch <- j
	}
	close(ch)

	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < concurrency; i++ {
		g.Go(func() error {
			for job := range ch {
				if err := ctx.Err(); err != nil {
					return err
				}
				if err := fn(ctx, job); err != nil {
					return err
				}
			}
			return nil
		})
	}
	return g.Wait()
}
