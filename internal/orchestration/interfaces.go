package orchestration

import (
	"io"
	"sync"
	"time"

	"lukechampine.com/uint128"

	"github.com/LeeHyunWon999/multi-thread/internal/logging"
	"github.com/LeeHyunWon999/multi-thread/internal/metrics"
	"github.com/LeeHyunWon999/multi-thread/internal/progress"
)

// RunResult encapsulates the outcome of a single strategy run.
// It serves as the shared domain type between orchestration and presentation layers.
type RunResult struct {
	// Name is the registry name of the strategy (e.g. "partition8").
	Name string
	// Workers is the number of worker goroutines the strategy forked.
	Workers int
	// Run is the 1-based repetition number.
	Run int
	// Sum is the computed range sum. It is zero if an error occurred.
	Sum uint128.Uint128
	// Duration is the wall-clock time of the run.
	Duration time.Duration
	// GCCycles is the number of GC cycles completed during the run.
	GCCycles uint32
	// Err contains any error that occurred during the run.
	Err error
}

// Options configures how strategies are executed and reported.
type Options struct {
	// Repeat is the number of runs per strategy. Values below 1 mean 1.
	Repeat int
	// Details enables the comparison table.
	Details bool
	// ProgressOut receives progress display output; nil discards it.
	ProgressOut io.Writer
	// Logger receives run diagnostics; nil discards them.
	Logger logging.Logger
	// Metrics records every run when non-nil.
	Metrics *metrics.Recorder
}

func (o Options) repeat() int {
	if o.Repeat < 1 {
		return 1
	}
	return o.Repeat
}

func (o Options) logger() logging.Logger {
	if o.Logger == nil {
		return logging.Nop()
	}
	return o.Logger
}

func (o Options) progressOut() io.Writer {
	if o.ProgressOut == nil {
		return io.Discard
	}
	return o.ProgressOut
}

// ProgressReporter defines the interface for displaying run progress.
// Implementations handle the visual representation of progress (spinners,
// progress bars) while the orchestration layer focuses on running strategies.
type ProgressReporter interface {
	// DisplayProgress consumes updates until progressChan is closed, then
	// calls wg.Done.
	//
	// Parameters:
	//   - wg: A WaitGroup to signal when display is complete.
	//   - progressChan: Channel receiving progress updates from workers.
	//   - numWorkers: The number of workers reporting on the channel.
	//   - out: The writer for progress output.
	DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.ProgressUpdate, numWorkers int, out io.Writer)
}

// ProgressReporterFunc is a function adapter that implements ProgressReporter.
type ProgressReporterFunc func(wg *sync.WaitGroup, progressChan <-chan progress.ProgressUpdate, numWorkers int, out io.Writer)

// DisplayProgress calls the underlying function.
func (f ProgressReporterFunc) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.ProgressUpdate, numWorkers int, out io.Writer) {
	f(wg, progressChan, numWorkers, out)
}

// NullProgressReporter is a no-op implementation of ProgressReporter.
// It drains the progress channel without displaying anything.
type NullProgressReporter struct{}

// DisplayProgress drains the channel without output.
func (NullProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.ProgressUpdate, _ int, _ io.Writer) {
	defer wg.Done()
	for range progressChan {
	}
}

// ResultPresenter defines the interface for presenting runs. The label of a
// run is presented before it starts, the result after it finishes.
type ResultPresenter interface {
	// PresentSeparator is called between two consecutive runs.
	PresentSeparator(out io.Writer)

	// PresentLabel announces the strategy about to run.
	PresentLabel(name string, out io.Writer)

	// PresentResult displays the outcome of a successful run.
	PresentResult(result RunResult, out io.Writer)

	// PresentComparisonTable displays every run side by side.
	PresentComparisonTable(results []RunResult, expected uint128.Uint128, out io.Writer)
}
