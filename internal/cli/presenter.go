package cli

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
	"lukechampine.com/uint128"

	"github.com/LeeHyunWon999/multi-thread/internal/format"
	"github.com/LeeHyunWon999/multi-thread/internal/orchestration"
	"github.com/LeeHyunWon999/multi-thread/internal/progress"
	"github.com/LeeHyunWon999/multi-thread/internal/summation"
	"github.com/LeeHyunWon999/multi-thread/internal/ui"
)

// CLIProgressReporter implements orchestration.ProgressReporter for CLI output.
// It wraps the DisplayProgress function to provide a spinner and progress bar
// display during runs.
type CLIProgressReporter struct{}

// Verify that CLIProgressReporter implements orchestration.ProgressReporter.
var _ orchestration.ProgressReporter = CLIProgressReporter{}

// DisplayProgress displays a spinner and progress bar for the running strategy.
func (CLIProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.ProgressUpdate, numWorkers int, out io.Writer) {
	DisplayProgress(wg, progressChan, numWorkers, out)
}

// CLIResultPresenter implements orchestration.ResultPresenter for CLI output.
//
// Normal output is one block per run:
//
//	<label>
//	연산완료 : <sum>
//	걸린시간 : <ms>ms
//
// with a blank line between blocks. Quiet output is one sum per line.
type CLIResultPresenter struct {
	Labels Labels
	Quiet  bool
}

// Verify interface compliance.
var _ orchestration.ResultPresenter = CLIResultPresenter{}

// NewCLIResultPresenter creates a presenter printing labels in lang.
func NewCLIResultPresenter(lang string, quiet bool) CLIResultPresenter {
	return CLIResultPresenter{Labels: LabelsFor(lang), Quiet: quiet}
}

// PresentSeparator prints the blank line between two blocks.
func (p CLIResultPresenter) PresentSeparator(out io.Writer) {
	if p.Quiet {
		return
	}
	fmt.Fprintln(out)
}

// PresentLabel prints the descriptive line of the strategy about to run.
func (p CLIResultPresenter) PresentLabel(name string, out io.Writer) {
	if p.Quiet {
		return
	}
	fmt.Fprintln(out, p.Labels.Label(name))
}

// PresentResult prints the sum and elapsed-time lines of a finished run.
func (p CLIResultPresenter) PresentResult(result orchestration.RunResult, out io.Writer) {
	if p.Quiet {
		fmt.Fprintln(out, result.Sum)
		return
	}
	fmt.Fprintf(out, "%s%s\n", p.Labels.SumPrefix, result.Sum)
	fmt.Fprintf(out, "%s%s\n", p.Labels.ElapsedPrefix, format.FormatMillis(result.Duration))
}

// PresentComparisonTable displays every run with its duration, speedup over
// the first sequential run and status. Uses manual padding so that the
// column widths ignore escape codes.
func (p CLIResultPresenter) PresentComparisonTable(results []orchestration.RunResult, expected uint128.Uint128, out io.Writer) {
	styles := ui.GetTableStyles()
	baseline := sequentialBaseline(results)

	headers := []string{"Strategy", "Run", "Workers", "Duration", "Speedup", "GC", "Status"}
	rows := make([][]string, 0, len(results))
	statuses := make([]bool, 0, len(results))
	for _, res := range results {
		ok := res.Err == nil && res.Sum.Equals(expected)
		status := "OK"
		switch {
		case res.Err != nil:
			status = fmt.Sprintf("FAILED (%v)", res.Err)
		case !ok:
			status = fmt.Sprintf("MISMATCH (%s)", res.Sum)
		}
		rows = append(rows, []string{
			res.Name,
			fmt.Sprintf("%d", res.Run),
			fmt.Sprintf("%d", res.Workers),
			format.FormatExecutionDuration(res.Duration),
			format.FormatSpeedup(baseline, res.Duration),
			fmt.Sprintf("%d", res.GCCycles),
			status,
		})
		statuses = append(statuses, ok)
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row[:len(row)-1] {
			if w := lipgloss.Width(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	fmt.Fprintf(out, "\n%s\n", styles.Title.Render("--- Comparison Summary ---"))
	cells := make([]string, len(headers))
	for i, h := range headers {
		cells[i] = styles.Header.Render(h) + padRight("", widths[i]-lipgloss.Width(h))
	}
	fmt.Fprintln(out, strings.Join(cells, styles.Separator))

	for r, row := range rows {
		for i, cell := range row {
			style := styles.Value
			switch {
			case i == 0:
				style = styles.Name
			case i == len(row)-1 && statuses[r]:
				style = styles.Success
			case i == len(row)-1:
				style = styles.Failure
			}
			cells[i] = style.Render(cell)
			if i < len(row)-1 {
				cells[i] += padRight("", widths[i]-lipgloss.Width(cell))
			}
		}
		fmt.Fprintln(out, strings.Join(cells, styles.Separator))
	}
	fmt.Fprintf(out, "%s\n", styles.Dim.Render("Expected: "+expected.String()))
}

func sequentialBaseline(results []orchestration.RunResult) time.Duration {
	for _, res := range results {
		if res.Name == summation.NameSequential && res.Err == nil {
			return res.Duration
		}
	}
	return 0
}

// padRight returns s followed by length spaces.
func padRight(s string, length int) string {
	if length <= 0 {
		return s
	}
	return s + strings.Repeat(" ", length)
}
