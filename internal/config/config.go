// Package config parses the command line and MULTITHREAD_ environment
// variables into an AppConfig.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/rs/zerolog"

	apperrors "github.com/LeeHyunWon999/multi-thread/internal/errors"
)

// EnvPrefix prefixes every environment variable read by the application.
const EnvPrefix = "MULTITHREAD_"

// MaxRepeat bounds -repeat.
const MaxRepeat = 1000

// SupportedLangs lists the accepted -lang values.
var SupportedLangs = []string{"ko", "en"}

// AppConfig aggregates the application's configuration parameters.
type AppConfig struct {
	// Algo is "all" or a comma separated list of strategy names.
	Algo string
	// Repeat is the number of runs per strategy.
	Repeat int
	// Details enables the execution header and the comparison table.
	Details bool
	// Quiet prints only the sums.
	Quiet bool
	// Lang selects the label language.
	Lang string
	// Progress draws a spinner on stderr while a strategy runs.
	Progress bool
	// LogLevel is the zerolog level of the stderr diagnostics.
	LogLevel string
	// MetricsFile, when set, receives the Prometheus text exposition.
	MetricsFile string
	// NoColor disables ANSI colors.
	NoColor bool
}

// Defaults returns the configuration used when nothing is overridden.
func Defaults() AppConfig {
	return AppConfig{
		Algo:     "all",
		Repeat:   1,
		Lang:     "ko",
		LogLevel: zerolog.WarnLevel.String(),
	}
}

// ZerologLevel returns the parsed LogLevel, or warn when it does not parse.
func (c AppConfig) ZerologLevel() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		return zerolog.WarnLevel
	}
	return level
}

// Validate checks the configuration against the available strategy names.
func (c AppConfig) Validate(availableAlgos []string) error {
	if c.Repeat < 1 || c.Repeat > MaxRepeat {
		return apperrors.NewConfigError("-repeat must be between 1 and %d, got %d", MaxRepeat, c.Repeat)
	}
	if !slices.Contains(SupportedLangs, c.Lang) {
		return apperrors.NewConfigError("unsupported -lang %q (supported: %s)", c.Lang, strings.Join(SupportedLangs, ", "))
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return apperrors.NewConfigError("invalid -log-level %q: %v", c.LogLevel, err)
	}
	if c.Quiet && c.Details {
		return apperrors.NewConfigError("-quiet and -details are mutually exclusive")
	}
	algo := strings.TrimSpace(c.Algo)
	if algo == "" || algo == "all" {
		return nil
	}
	for _, name := range strings.Split(algo, ",") {
		name = strings.TrimSpace(name)
		if !slices.Contains(availableAlgos, name) {
			return apperrors.NewConfigError("unknown -algo %q (available: all, %s)", name, strings.Join(availableAlgos, ", "))
		}
	}
	return nil
}

// ParseConfig parses args (without the program name) and applies environment
// overrides for every flag not given on the command line.
//
// Parameters:
//   - programName: The name shown in usage output.
//   - args: The command-line arguments.
//   - errWriter: Receives usage and parse diagnostics.
//   - availableAlgos: Registry names accepted by -algo.
//
// Returns:
//   - AppConfig: The parsed configuration.
//   - error: flag.ErrHelp for -h/--help, a ConfigError for invalid input.
func ParseConfig(programName string, args []string, errWriter io.Writer, availableAlgos []string) (AppConfig, error) {
	cfg := Defaults()
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)

	fs.StringVar(&cfg.Algo, "algo", cfg.Algo, fmt.Sprintf("Strategies to run: 'all' or a comma separated list of %s.", strings.Join(availableAlgos, ", ")))
	fs.IntVar(&cfg.Repeat, "repeat", cfg.Repeat, "Runs per strategy.")
	fs.BoolVar(&cfg.Details, "d", cfg.Details, "Print the execution header and the comparison table (shorthand).")
	fs.BoolVar(&cfg.Details, "details", cfg.Details, "Print the execution header and the comparison table.")
	fs.BoolVar(&cfg.Quiet, "q", cfg.Quiet, "Print only the sums (shorthand).")
	fs.BoolVar(&cfg.Quiet, "quiet", cfg.Quiet, "Print only the sums.")
	fs.StringVar(&cfg.Lang, "lang", cfg.Lang, "Label language: ko or en.")
	fs.BoolVar(&cfg.Progress, "progress", cfg.Progress, "Show a progress spinner on stderr.")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Diagnostic log level (debug, info, warn, error).")
	fs.StringVar(&cfg.MetricsFile, "metrics-file", cfg.MetricsFile, "Write Prometheus metrics to this file.")
	fs.BoolVar(&cfg.NoColor, "no-color", cfg.NoColor, "Disable colored output.")

	fs.Usage = func() {
		fmt.Fprintf(errWriter, "Usage: %s [flags]\n\n", programName)
		fmt.Fprintf(errWriter, "Sums 1,000,000 through 5,000,000 with several threading strategies.\n\n")
		fmt.Fprintf(errWriter, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(errWriter, "\nEvery flag can also be set through %s<NAME> (e.g. %sREPEAT=3).\n", EnvPrefix, EnvPrefix)
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return cfg, err
		}
		return cfg, apperrors.NewConfigError("%v", err)
	}
	if fs.NArg() > 0 {
		fs.Usage()
		return cfg, apperrors.NewConfigError("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	applyEnvOverrides(&cfg, fs)

	if err := cfg.Validate(availableAlgos); err != nil {
		return cfg, err
	}
	return cfg, nil
}
