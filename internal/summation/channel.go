package summation

import (
	"context"

	"lukechampine.com/uint128"

	"github.com/LeeHyunWon999/multi-thread/internal/progress"
)

// ChannelReduced decomposes the range like MutexAccumulated but shares no
// memory: workers send their partials to a single aggregating goroutine.
type ChannelReduced struct {
	name string
	plan PartitionPlan

	sumChunk func(worker int, c Block) uint128.Uint128
}

// NewChannelReduced returns a message-passing strategy. It panics if plan
// does not tile [RangeStart, Endpoint) exactly.
func NewChannelReduced(name string, plan PartitionPlan) *ChannelReduced {
	mustCover(plan)
	return &ChannelReduced{name: name, plan: plan, sumChunk: sumBlock}
}

// Name implements Strategy.
func (c *ChannelReduced) Name() string { return c.name }

// Workers implements Strategy.
func (c *ChannelReduced) Workers() int { return c.plan.Workers }

// Sum implements Strategy.
func (c *ChannelReduced) Sum(ctx context.Context, report progress.ProgressCallback) (uint128.Uint128, error) {
	if report == nil {
		report = progress.Nop
	}
	blocks := c.plan.Blocks()
	partials := make(chan uint128.Uint128, len(blocks))
	reduced := make(chan uint128.Uint128, 1)

	go func() {
		total := uint128.Zero
		for p := range partials {
			total = total.Add(p)
		}
		reduced <- total
	}()

	_, err := forkJoin(ctx, c.name, len(blocks), func(_ context.Context, w int) (uint128.Uint128, error) {
		chunks := blocks[w].Split(c.plan.Chunks)
		partial := uint128.Zero
		for j, chunk := range chunks {
			partial = partial.Add(c.sumChunk(w, chunk))
			report(w, float64(j+1)/float64(len(chunks)))
		}
		partials <- partial
		return uint128.Zero, nil
	})
	close(partials)
	total := <-reduced
	if err != nil {
		return uint128.Zero, err
	}
	return total.Add64(Endpoint), nil
}
