package summation

import (
	"context"
	"runtime/pprof"
	"strconv"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sys/cpu"
	"lukechampine.com/uint128"

	apperrors "github.com/LeeHyunWon999/multi-thread/internal/errors"
)

// partialSlot holds one worker's result. The padding keeps neighbouring
// workers' writes on separate cache lines.
type partialSlot struct {
	sum uint128.Uint128
	_   cpu.CacheLinePad
}

// workFunc computes the contribution of a single worker.
type workFunc func(ctx context.Context, worker int) (uint128.Uint128, error)

// forkJoin starts one goroutine per worker, waits for all of them and returns
// their results in worker order. A panicking worker is recovered at its
// boundary and reported as an apperrors.WorkerError; the first failure is
// returned once every worker has finished.
//
// Worker goroutines carry pprof labels naming the strategy and worker index.
func forkJoin(ctx context.Context, strategy string, workers int, work workFunc) ([]uint128.Uint128, error) {
	slots := make([]partialSlot, workers)

	var g errgroup.Group
	for i := 0; i < workers; i++ {
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = apperrors.WorkerError{Strategy: strategy, Worker: i, Panic: r}
				}
			}()
			labels := pprof.Labels("strategy", strategy, "worker", strconv.Itoa(i))
			pprof.Do(ctx, labels, func(ctx context.Context) {
				slots[i].sum, err = work(ctx, i)
			})
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	partials := make([]uint128.Uint128, workers)
	for i := range slots {
		partials[i] = slots[i].sum
	}
	return partials, nil
}
