// Package progress carries per-worker completion updates from summation
// workers to whatever is displaying them.
package progress

// ProgressUpdate is a single completion report from one worker.
type ProgressUpdate struct {
	// WorkerIndex identifies the reporting worker within its strategy.
	WorkerIndex int
	// Value is the fraction of the worker's block summed so far (0.0 to 1.0).
	Value float64
}

// ProgressCallback receives completion reports from workers. It may be called
// concurrently from several goroutines.
type ProgressCallback func(worker int, value float64)

// Nop is a ProgressCallback that ignores every update.
func Nop(int, float64) {}

// NewChannelCallback returns a callback forwarding updates to ch. Sends never
// block: when the consumer lags, intermediate updates are dropped so workers
// are not slowed down by the display.
func NewChannelCallback(ch chan<- ProgressUpdate) ProgressCallback {
	if ch == nil {
		return Nop
	}
	return func(worker int, value float64) {
		select {
		case ch <- ProgressUpdate{WorkerIndex: worker, Value: value}:
		default:
		}
	}
}

// State aggregates the latest value reported by each worker.
type State struct {
	values []float64
}

// NewState creates a State tracking numWorkers workers.
func NewState(numWorkers int) *State {
	if numWorkers < 0 {
		numWorkers = 0
	}
	return &State{values: make([]float64, numWorkers)}
}

// Update records value for worker; out-of-range indexes are ignored.
func (s *State) Update(worker int, value float64) {
	if worker >= 0 && worker < len(s.values) {
		s.values[worker] = value
	}
}

// Average returns the mean progress across all tracked workers.
func (s *State) Average() float64 {
	if len(s.values) == 0 {
		return 0
	}
	var total float64
	for _, v := range s.values {
		total += v
	}
	return total / float64(len(s.values))
}
