package summation

import (
	"fmt"

	"lukechampine.com/uint128"
)

// Block is the half-open range [Lo, Hi) owned by one worker or chunk.
type Block struct {
	Lo uint64
	Hi uint64
}

// Len returns the number of values in the block.
func (b Block) Len() uint64 {
	if b.Hi <= b.Lo {
		return 0
	}
	return b.Hi - b.Lo
}

// Split cuts the block into n contiguous chunks of equal length. When the
// length is not a multiple of n the last chunk absorbs the remainder.
func (b Block) Split(n int) []Block {
	if n <= 1 {
		return []Block{b}
	}
	size := b.Len() / uint64(n)
	chunks := make([]Block, n)
	lo := b.Lo
	for i := range chunks {
		hi := lo + size
		if i == n-1 {
			hi = b.Hi
		}
		chunks[i] = Block{Lo: lo, Hi: hi}
		lo = hi
	}
	return chunks
}

// PartitionPlan describes how a range is divided among workers. Block i spans
// [(FirstIndex+i)*BlockSize, (FirstIndex+i+1)*BlockSize).
type PartitionPlan struct {
	FirstIndex uint64
	Workers    int
	BlockSize  uint64
	// Chunks is the number of sub-chunks each worker iterates over. Zero or
	// one means the block is summed in a single pass.
	Chunks int
}

// Blocks returns the block assigned to each worker, in worker order.
func (p PartitionPlan) Blocks() []Block {
	blocks := make([]Block, p.Workers)
	for i := range blocks {
		lo := (p.FirstIndex + uint64(i)) * p.BlockSize
		blocks[i] = Block{Lo: lo, Hi: lo + p.BlockSize}
	}
	return blocks
}

// Bounds returns the half-open range covered by the plan.
func (p PartitionPlan) Bounds() Block {
	return Block{Lo: p.FirstIndex * p.BlockSize, Hi: (p.FirstIndex + uint64(p.Workers)) * p.BlockSize}
}

// Covers reports an error unless the plan's blocks, and their chunks, tile
// [lo, hi) exactly with no gap and no overlap.
func (p PartitionPlan) Covers(lo, hi uint64) error {
	if p.Workers <= 0 || p.BlockSize == 0 {
		return fmt.Errorf("plan %+v has no work", p)
	}
	next := lo
	for i, b := range p.Blocks() {
		if b.Lo != next {
			return fmt.Errorf("block %d starts at %d, expected %d", i, b.Lo, next)
		}
		inner := b.Lo
		for j, c := range b.Split(p.Chunks) {
			if c.Lo != inner || c.Hi < c.Lo {
				return fmt.Errorf("block %d chunk %d spans [%d, %d), expected start %d", i, j, c.Lo, c.Hi, inner)
			}
			inner = c.Hi
		}
		if inner != b.Hi {
			return fmt.Errorf("block %d chunks end at %d, expected %d", i, inner, b.Hi)
		}
		next = b.Hi
	}
	if next != hi {
		return fmt.Errorf("plan ends at %d, expected %d", next, hi)
	}
	return nil
}

// sumRange adds every value in [lo, hi) into a 128-bit accumulator.
func sumRange(lo, hi uint64) uint128.Uint128 {
	sum := uint128.Zero
	for v := lo; v < hi; v++ {
		sum = sum.Add64(v)
	}
	return sum
}

// ClosedFormSum returns first + (first+1) + ... + last using the arithmetic
// series formula. It returns zero when last < first.
func ClosedFormSum(first, last uint64) uint128.Uint128 {
	if last < first {
		return uint128.Zero
	}
	count := last - first + 1
	// (first+last) and count have opposite parity, so the product is even.
	return uint128.From64(first).Add64(last).Mul64(count).Div64(2)
}
