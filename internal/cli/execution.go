package cli

import (
	"fmt"
	"io"
	"runtime"

	"github.com/LeeHyunWon999/multi-thread/internal/config"
	"github.com/LeeHyunWon999/multi-thread/internal/summation"
	"github.com/LeeHyunWon999/multi-thread/internal/sysmon"
	"github.com/LeeHyunWon999/multi-thread/internal/ui"
)

// PrintExecutionConfig displays the execution header of a details run: the
// summed range, the selected strategies and the host they run on.
//
// Parameters:
//   - cfg: The application configuration.
//   - strategies: The strategies about to run.
//   - host: A host sample (see sysmon.Sample).
//   - out: The writer for standard output.
func PrintExecutionConfig(cfg config.AppConfig, strategies []summation.Strategy, host sysmon.Stats, out io.Writer) {
	fmt.Fprintf(out, "--- Execution Configuration ---\n")
	fmt.Fprintf(out, "Summing %s[%d, %d]%s, expected %s%s%s.\n",
		ui.ColorMagenta(), summation.RangeStart, summation.Endpoint, ui.ColorReset(),
		ui.ColorYellow(), summation.ExpectedSum, ui.ColorReset())

	names := make([]string, len(strategies))
	for i, s := range strategies {
		names[i] = fmt.Sprintf("%s%s%s(%d)", ui.ColorGreen(), s.Name(), ui.ColorReset(), s.Workers())
	}
	fmt.Fprintf(out, "Strategies: %v, %d run(s) each.\n", names, cfg.Repeat)

	model := host.CPUModel
	if model == "" {
		model = "unknown CPU"
	}
	fmt.Fprintf(out, "Environment: %s%s%s, %s%d%s logical / %d physical cores, GOMAXPROCS=%d, Go %s.\n",
		ui.ColorCyan(), model, ui.ColorReset(),
		ui.ColorCyan(), host.LogicalCPUs, ui.ColorReset(), host.PhysicalCPUs,
		host.GOMAXPROCS, runtime.Version())
	fmt.Fprintf(out, "Load: CPU %.1f%%, memory %.1f%% of %d MiB.\n",
		host.CPUPercent, host.MemPercent, host.MemTotal>>20)
	fmt.Fprintf(out, "\n--- Starting Execution ---\n")
}
