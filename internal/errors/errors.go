package apperrors

import (
	"errors"
	"fmt"
	"io"
)

// Application exit codes define the standard exit statuses for the application.
// These codes are used to signal the outcome of the program execution to the OS.
const (
	ExitSuccess       = 0 // Indicates successful execution.
	ExitErrorGeneric  = 1 // Indicates a generic error.
	ExitErrorMismatch = 3 // Indicates a result mismatch between strategies.
	ExitErrorConfig   = 4 // Indicates a configuration error.
	ExitErrorWorker   = 5 // Indicates a worker terminated abnormally (join failure).
	ExitErrorPoisoned = 6 // Indicates the shared accumulator lock was poisoned.
)

// ConfigError represents a user configuration error, such as invalid flags or
// values. It indicates that the application cannot proceed due to incorrect user input.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a new ConfigError with a formatted message.
//
// Parameters:
//   - format: A format string (see fmt.Sprintf).
//   - a: Arguments to be formatted into the string.
//
// Returns:
//   - error: A new ConfigError instance containing the formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// WorkerError reports a worker goroutine that terminated abnormally. The
// coordinator observes it when joining the workers of a strategy, so it plays
// the role of a failed join.
type WorkerError struct {
	// Strategy is the registry name of the strategy that owned the worker.
	Strategy string
	// Worker is the index of the failed worker within its strategy.
	Worker int
	// Panic is the value recovered from the worker.
	Panic any
}

// Error returns a formatted message describing the failed worker.
func (e WorkerError) Error() string {
	return fmt.Sprintf("worker %d of %q terminated abnormally: %v", e.Worker, e.Strategy, e.Panic)
}

// Unwrap exposes the recovered value when it is itself an error.
func (e WorkerError) Unwrap() error {
	if err, ok := e.Panic.(error); ok {
		return err
	}
	return nil
}

// PoisonedLockError reports a lock that can no longer be acquired because a
// previous holder terminated abnormally inside its critical section.
type PoisonedLockError struct {
	// Resource names the value protected by the lock.
	Resource string
	// Cause is the sentinel identifying the poisoned state.
	Cause error
}

// Error returns a formatted message describing the poisoned lock.
func (e PoisonedLockError) Error() string {
	return fmt.Sprintf("lock on %s is poisoned: %v", e.Resource, e.Cause)
}

// Unwrap returns the underlying sentinel.
func (e PoisonedLockError) Unwrap() error { return e.Cause }

// WrapError wraps an error with additional context using fmt.Errorf and %w.
// This allows the wrapped error to be unwrapped with errors.Unwrap() and
// checked with errors.Is() and errors.As().
//
// Parameters:
//   - err: The error to wrap.
//   - format: A format string for the context message.
//   - args: Arguments for the format string.
//
// Returns:
//   - error: The wrapped error, or nil if err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// ExitCodeFor maps an error to the exit code the process should return.
func ExitCodeFor(err error) int {
	var (
		configErr   ConfigError
		poisonedErr PoisonedLockError
		workerErr   WorkerError
	)
	switch {
	case err == nil:
		return ExitSuccess
	case errors.As(err, &configErr):
		return ExitErrorConfig
	case errors.As(err, &poisonedErr):
		return ExitErrorPoisoned
	case errors.As(err, &workerErr):
		return ExitErrorWorker
	default:
		return ExitErrorGeneric
	}
}

// HandleRunError writes a single diagnostic line for a failed strategy run and
// returns the matching exit code.
func HandleRunError(err error, out io.Writer) int {
	if err == nil {
		return ExitSuccess
	}
	fmt.Fprintf(out, "fatal: %v\n", err)
	return ExitCodeFor(err)
}
