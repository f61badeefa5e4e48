package summation

import (
	"context"

	"lukechampine.com/uint128"

	apperrors "github.com/LeeHyunWon999/multi-thread/internal/errors"
	"github.com/LeeHyunWon999/multi-thread/internal/progress"
)

// MutexAccumulated forks one worker per block; each worker sums its block
// chunk by chunk into a local partial, then adds the partial into a single
// SharedAccumulator under its lock.
type MutexAccumulated struct {
	name string
	plan PartitionPlan

	sumChunk func(worker int, c Block) uint128.Uint128
	merge    func(acc *SharedAccumulator, partial uint128.Uint128) error
}

// NewMutexAccumulated returns a lock-based strategy. It panics if plan does
// not tile [RangeStart, Endpoint) exactly.
func NewMutexAccumulated(name string, plan PartitionPlan) *MutexAccumulated {
	mustCover(plan)
	return &MutexAccumulated{
		name:     name,
		plan:     plan,
		sumChunk: sumBlock,
		merge:    (*SharedAccumulator).Add,
	}
}

// Name implements Strategy.
func (m *MutexAccumulated) Name() string { return m.name }

// Workers implements Strategy.
func (m *MutexAccumulated) Workers() int { return m.plan.Workers }

// Plan returns the partition plan.
func (m *MutexAccumulated) Plan() PartitionPlan { return m.plan }

// Sum implements Strategy. A worker failure or a poisoned accumulator aborts
// the whole computation.
func (m *MutexAccumulated) Sum(ctx context.Context, report progress.ProgressCallback) (uint128.Uint128, error) {
	if report == nil {
		report = progress.Nop
	}
	acc := NewSharedAccumulator()
	blocks := m.plan.Blocks()

	_, err := forkJoin(ctx, m.name, len(blocks), func(_ context.Context, w int) (uint128.Uint128, error) {
		chunks := blocks[w].Split(m.plan.Chunks)
		partial := uint128.Zero
		for j, c := range chunks {
			partial = partial.Add(m.sumChunk(w, c))
			report(w, float64(j+1)/float64(len(chunks)))
		}
		return uint128.Zero, m.merge(acc, partial)
	})
	if err != nil {
		return uint128.Zero, err
	}

	total, err := acc.Load()
	if err != nil {
		return uint128.Zero, apperrors.WrapError(err, "%s: final read", m.name)
	}
	return total.Add64(Endpoint), nil
}
