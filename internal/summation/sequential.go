package summation

import (
	"context"

	"lukechampine.com/uint128"

	"github.com/LeeHyunWon999/multi-thread/internal/progress"
)

// Sequential sums the whole range on the calling goroutine.
type Sequential struct{}

// NewSequential returns the single-threaded baseline strategy.
func NewSequential() *Sequential { return &Sequential{} }

// Name implements Strategy.
func (*Sequential) Name() string { return NameSequential }

// Workers implements Strategy.
func (*Sequential) Workers() int { return 1 }

// Sum implements Strategy. It cannot fail.
func (*Sequential) Sum(_ context.Context, report progress.ProgressCallback) (uint128.Uint128, error) {
	sum := sumRange(RangeStart, RangeEnd)
	if report != nil {
		report(0, 1)
	}
	return sum, nil
}
