// Package app wires configuration, strategies, orchestration and presentation
// into the multithread command.
package app

import (
	"context"
	"errors"
	"flag"
	"io"

	"github.com/LeeHyunWon999/multi-thread/internal/config"
	"github.com/LeeHyunWon999/multi-thread/internal/logging"
	"github.com/LeeHyunWon999/multi-thread/internal/summation"
	"github.com/LeeHyunWon999/multi-thread/internal/ui"
)

// Application represents the multithread application instance.
type Application struct {
	Config    config.AppConfig
	Registry  *summation.Registry
	ErrWriter io.Writer
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithRegistry sets a custom strategy registry for the application.
func WithRegistry(r *summation.Registry) AppOption {
	return func(a *Application) { a.Registry = r }
}

// New creates a new Application instance by parsing command-line arguments.
// args[0] is the program name.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}
	if app.Registry == nil {
		app.Registry = summation.NewDefaultRegistry()
	}

	programName := "multithread"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter, app.Registry.List())
	if err != nil {
		return nil, err
	}
	app.Config = cfg
	return app, nil
}

// Run executes the configured strategies and returns the process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	ui.InitTheme(a.Config.NoColor)
	logger := logging.NewConsoleLogger(a.ErrWriter, a.Config.ZerologLevel(), !ui.ColorsEnabled())
	logger.Debug("configuration loaded",
		logging.String("algo", a.Config.Algo),
		logging.Int("repeat", a.Config.Repeat),
		logging.String("lang", a.Config.Lang),
	)
	return a.runSummation(ctx, out, logger)
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
