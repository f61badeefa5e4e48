package summation

// ─────────────────────────────────────────────────────────────────────────────
// Range Constants
// ─────────────────────────────────────────────────────────────────────────────

const (
	// RangeStart is the first value of the summed range.
	RangeStart uint64 = 1_000_000

	// RangeEnd is the exclusive upper bound of the summed range.
	RangeEnd uint64 = 5_000_001

	// Endpoint is the last value of the range. The block partitions stop one
	// short of it, so the coordinators add it back after joining.
	Endpoint uint64 = RangeEnd - 1
)

// ─────────────────────────────────────────────────────────────────────────────
// Strategy Names
// ─────────────────────────────────────────────────────────────────────────────

const (
	NameSequential = "sequential"
	NamePartition4 = "partition4"
	NamePartition8 = "partition8"
	NameMutex8     = "mutex8"
	NameChannel8   = "channel8"
)

// DefaultOrder lists the strategies executed by a default run, in order.
var DefaultOrder = []string{NameSequential, NamePartition4, NamePartition8, NameMutex8}

// ─────────────────────────────────────────────────────────────────────────────
// Partition Plans
// ─────────────────────────────────────────────────────────────────────────────

var (
	// Plan4 splits the range into 4 blocks of 1,000,000 (indexes 1..4).
	Plan4 = PartitionPlan{FirstIndex: 1, Workers: 4, BlockSize: 1_000_000}

	// Plan8 splits the range into 8 blocks of 500,000 (indexes 2..9).
	Plan8 = PartitionPlan{FirstIndex: 2, Workers: 8, BlockSize: 500_000}

	// Plan8x50 is Plan8 with each block further cut into 50 chunks of 10,000.
	Plan8x50 = PartitionPlan{FirstIndex: 2, Workers: 8, BlockSize: 500_000, Chunks: 50}
)

// ExpectedSum is the closed-form sum of RangeStart..Endpoint inclusive.
var ExpectedSum = ClosedFormSum(RangeStart, Endpoint)
