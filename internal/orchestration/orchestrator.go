package orchestration

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"lukechampine.com/uint128"

	apperrors "github.com/LeeHyunWon999/multi-thread/internal/errors"
	"github.com/LeeHyunWon999/multi-thread/internal/logging"
	"github.com/LeeHyunWon999/multi-thread/internal/metrics"
	"github.com/LeeHyunWon999/multi-thread/internal/progress"
	"github.com/LeeHyunWon999/multi-thread/internal/summation"
)

// ProgressBufferMultiplier defines the buffer size multiplier for the progress
// channel. A larger buffer reduces the number of updates dropped when the
// display is slow to consume them.
const ProgressBufferMultiplier = 5

const tracerName = "github.com/LeeHyunWon999/multi-thread/internal/orchestration"

// ExecuteStrategies runs each strategy opts.Repeat times, strictly one after
// another so that no two runs compete for CPUs. Every run is announced with
// presenter.PresentLabel before it starts and reported with
// presenter.PresentResult once it finishes.
//
// Any failure is fatal: the first failed run stops the sequence, and its error
// is returned together with every result gathered so far (the failed one
// included).
//
// Parameters:
//   - ctx: Parent context for tracing and profiler labels.
//   - strategies: The strategies to run, in presentation order.
//   - opts: Execution options.
//   - reporter: The progress reporter (use NullProgressReporter to hide progress).
//   - presenter: The result presenter.
//   - out: The writer for labels and results.
//
// Returns:
//   - []RunResult: One result per executed run.
//   - error: The error of the failed run, if any.
func ExecuteStrategies(ctx context.Context, strategies []summation.Strategy, opts Options, reporter ProgressReporter, presenter ResultPresenter, out io.Writer) ([]RunResult, error) {
	logger := opts.logger()
	repeat := opts.repeat()
	memory := metrics.NewMemoryCollector()
	results := make([]RunResult, 0, len(strategies)*repeat)

	for _, s := range strategies {
		for run := 1; run <= repeat; run++ {
			if len(results) > 0 {
				presenter.PresentSeparator(out)
			}
			presenter.PresentLabel(s.Name(), out)

			res := runOnce(ctx, s, run, reporter, opts.progressOut(), memory, logger)
			results = append(results, res)
			if opts.Metrics != nil {
				opts.Metrics.ObserveRun(res.Name, res.Workers, res.Duration, res.GCCycles, res.Err)
			}
			if res.Err != nil {
				logger.Error("run failed", res.Err, logging.String("strategy", res.Name), logging.Int("run", run))
				return results, apperrors.WrapError(res.Err, "%s (run %d)", res.Name, run)
			}
			presenter.PresentResult(res, out)
		}
	}
	return results, nil
}

func runOnce(ctx context.Context, s summation.Strategy, run int, reporter ProgressReporter, progressOut io.Writer, memory *metrics.MemoryCollector, logger logging.Logger) RunResult {
	name, workers := s.Name(), s.Workers()
	ctx, span := otel.Tracer(tracerName).Start(ctx, "summation."+name)
	defer span.End()
	span.SetAttributes(
		attribute.String("strategy", name),
		attribute.Int("workers", workers),
		attribute.Int("run", run),
	)
	logger.Debug("run started", logging.String("strategy", name), logging.Int("workers", workers), logging.Int("run", run))

	progressChan := make(chan progress.ProgressUpdate, workers*ProgressBufferMultiplier)
	var displayWg sync.WaitGroup
	displayWg.Add(1)
	go reporter.DisplayProgress(&displayWg, progressChan, workers, progressOut)

	before := memory.Snapshot()
	start := time.Now()
	sum, err := s.Sum(ctx, progress.NewChannelCallback(progressChan))
	elapsed := time.Since(start)
	delta := memory.Snapshot().Since(before)

	close(progressChan)
	displayWg.Wait()

	res := RunResult{
		Name:     name,
		Workers:  workers,
		Run:      run,
		Sum:      sum,
		Duration: elapsed,
		GCCycles: delta.GCCycles,
		Err:      err,
	}
	if err != nil {
		res.Sum = uint128.Zero
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return res
	}
	span.SetAttributes(
		attribute.String("sum", sum.String()),
		attribute.Int64("duration_us", elapsed.Microseconds()),
	)
	logger.Debug("run finished",
		logging.String("strategy", name),
		logging.Int("run", run),
		logging.String("sum", sum.String()),
		logging.Float64("ms", float64(elapsed.Microseconds())/1000),
		logging.Int("gc_cycles", int(delta.GCCycles)),
	)
	return res
}

// AnalyzeComparisonResults validates the runs once they are all done: every
// successful run must equal expected, which also makes them agree with each
// other. In details mode the comparison table is printed first.
//
// Parameters:
//   - results: The runs to analyze.
//   - expected: The closed-form sum of the range.
//   - opts: Execution options.
//   - presenter: The result presenter for the comparison table.
//   - out: The writer for the comparison table.
//   - errOut: The writer for diagnostics.
//
// Returns:
//   - int: An exit code indicating success (0) or the type of failure.
func AnalyzeComparisonResults(results []RunResult, expected uint128.Uint128, opts Options, presenter ResultPresenter, out, errOut io.Writer) int {
	if opts.Details && len(results) > 0 {
		presenter.PresentComparisonTable(results, expected, out)
	}

	if len(results) == 0 {
		fmt.Fprintf(errOut, "no strategy was executed\n")
		return apperrors.ExitErrorGeneric
	}

	for _, res := range results {
		if res.Err != nil {
			return apperrors.ExitCodeFor(res.Err)
		}
	}

	for _, res := range results {
		if !res.Sum.Equals(expected) {
			fmt.Fprintf(errOut, "result mismatch: %s (run %d) returned %s, expected %s\n",
				res.Name, res.Run, res.Sum, expected)
			return apperrors.ExitErrorMismatch
		}
	}
	return apperrors.ExitSuccess
}
