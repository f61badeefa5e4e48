package app

import (
	"context"
	"io"

	"github.com/LeeHyunWon999/multi-thread/internal/cli"
	apperrors "github.com/LeeHyunWon999/multi-thread/internal/errors"
	"github.com/LeeHyunWon999/multi-thread/internal/logging"
	"github.com/LeeHyunWon999/multi-thread/internal/metrics"
	"github.com/LeeHyunWon999/multi-thread/internal/orchestration"
	"github.com/LeeHyunWon999/multi-thread/internal/summation"
	"github.com/LeeHyunWon999/multi-thread/internal/sysmon"
)

// runSummation runs the selected strategies in order, then validates them.
func (a *Application) runSummation(ctx context.Context, out io.Writer, logger logging.Logger) int {
	strategies, err := orchestration.GetStrategiesToRun(a.Config.Algo, a.Registry)
	if err != nil {
		return apperrors.HandleRunError(err, a.ErrWriter)
	}

	if a.Config.Details {
		cli.PrintExecutionConfig(a.Config, strategies, sysmon.Sample(), out)
	}

	var reporter orchestration.ProgressReporter = orchestration.NullProgressReporter{}
	if a.Config.Progress && !a.Config.Quiet {
		reporter = cli.CLIProgressReporter{}
	}

	opts := orchestration.Options{
		Repeat:      a.Config.Repeat,
		Details:     a.Config.Details,
		ProgressOut: a.ErrWriter,
		Logger:      logger,
	}
	if a.Config.MetricsFile != "" {
		opts.Metrics = metrics.NewRecorder()
	}

	presenter := cli.NewCLIResultPresenter(a.Config.Lang, a.Config.Quiet)
	results, runErr := orchestration.ExecuteStrategies(ctx, strategies, opts, reporter, presenter, out)

	if opts.Metrics != nil {
		if err := opts.Metrics.WriteTextfile(a.Config.MetricsFile); err != nil {
			logger.Error("metrics not written", err, logging.String("path", a.Config.MetricsFile))
			if runErr == nil {
				return apperrors.HandleRunError(err, a.ErrWriter)
			}
		}
	}
	if runErr != nil {
		return apperrors.HandleRunError(runErr, a.ErrWriter)
	}

	return orchestration.AnalyzeComparisonResults(results, summation.ExpectedSum, opts, presenter, out, a.ErrWriter)
}
