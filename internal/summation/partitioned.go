package summation

import (
	"context"

	"lukechampine.com/uint128"

	"github.com/LeeHyunWon999/multi-thread/internal/progress"
)

// Partitioned forks one worker per block of its plan. Workers keep their
// partial sums private; the coordinator adds them after joining.
type Partitioned struct {
	name string
	plan PartitionPlan

	// sumBlock is swapped in tests to delay or fail individual workers.
	sumBlock func(worker int, b Block) uint128.Uint128
}

// NewPartitioned returns a partitioned strategy. It panics if plan does not
// tile [RangeStart, Endpoint) exactly.
func NewPartitioned(name string, plan PartitionPlan) *Partitioned {
	mustCover(plan)
	return &Partitioned{name: name, plan: plan, sumBlock: sumBlock}
}

// Name implements Strategy.
func (p *Partitioned) Name() string { return p.name }

// Workers implements Strategy.
func (p *Partitioned) Workers() int { return p.plan.Workers }

// Plan returns the partition plan.
func (p *Partitioned) Plan() PartitionPlan { return p.plan }

// Sum implements Strategy.
func (p *Partitioned) Sum(ctx context.Context, report progress.ProgressCallback) (uint128.Uint128, error) {
	if report == nil {
		report = progress.Nop
	}
	blocks := p.plan.Blocks()
	partials, err := forkJoin(ctx, p.name, len(blocks), func(_ context.Context, w int) (uint128.Uint128, error) {
		partial := p.sumBlock(w, blocks[w])
		report(w, 1)
		return partial, nil
	})
	if err != nil {
		return uint128.Zero, err
	}

	total := uint128.Zero
	for _, partial := range partials {
		total = total.Add(partial)
	}
	return total.Add64(Endpoint), nil
}

func sumBlock(_ int, b Block) uint128.Uint128 { return sumRange(b.Lo, b.Hi) }

func mustCover(plan PartitionPlan) {
	if err := plan.Covers(RangeStart, Endpoint); err != nil {
		panic("summation: " + err.Error())
	}
}
