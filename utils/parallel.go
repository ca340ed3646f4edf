package utils

import (
	"context"
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// ParallelFactor controls the max level of parallelization. This might be useful
// to set in tests where too much parallelism actually slows tests down in
// aggregate.
var ParallelFactor = runtime.GOMAXPROCS(0)

func init() {
	if ParallelFactor <= 0 {
		ParallelFactor = 1
	}
	quarterProcs := float64(ParallelFactor) * .25
	if quarterProcs > 8 {
		ParallelFactor = int(quarterProcs)
	}
}

// IndexedFunc is for ParallelForEach. It runs the work item at index i.
type IndexedFunc func(ctx context.Context, i int) error

// ParallelForEach runs f for every index in [0, n) with at most limit calls in flight.
// A limit <= 0 means ParallelFactor. The first error cancels the context handed to the
// remaining calls and is returned. A panic inside f is returned as an error.
func ParallelForEach(ctx context.Context, n, limit int, f IndexedFunc) error {
	if limit <= 0 {
		limit = ParallelFactor
	}
	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(limit)
	for i := 0; i < n; i++ {
		i := i
		group.Go(func() (err error) {
			defer func() {
				if thePanic := recover(); thePanic != nil {
					err = errors.Errorf("got panic running work item %d in parallel: %v", i, thePanic)
				}
			}()
			if err := ctx.Err(); err != nil {
				return err
			}
			return f(ctx, i)
		})
	}
	return group.Wait()
}
