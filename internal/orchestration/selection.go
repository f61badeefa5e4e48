package orchestration

import (
	"strings"

	apperrors "github.com/LeeHyunWon999/multi-thread/internal/errors"
	"github.com/LeeHyunWon999/multi-thread/internal/summation"
)

// AlgoAll selects the default run: every procedure of summation.DefaultOrder.
const AlgoAll = "all"

// GetStrategiesToRun resolves an -algo value against the registry. "all" (or
// an empty value) yields summation.DefaultOrder; otherwise algo is a comma
// separated list of registry names, run in the order given.
//
// Parameters:
//   - algo: The algorithm selection.
//   - registry: The registry to resolve names against.
//
// Returns:
//   - []summation.Strategy: The strategies to execute.
//   - error: A ConfigError for unknown or duplicated names.
func GetStrategiesToRun(algo string, registry *summation.Registry) ([]summation.Strategy, error) {
	algo = strings.TrimSpace(algo)
	names := summation.DefaultOrder
	if algo != "" && algo != AlgoAll {
		names = strings.Split(algo, ",")
	}

	seen := make(map[string]bool, len(names))
	strategies := make([]summation.Strategy, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, apperrors.NewConfigError("empty strategy name in %q", algo)
		}
		if seen[name] {
			return nil, apperrors.NewConfigError("strategy %q selected twice", name)
		}
		seen[name] = true
		s, err := registry.Get(name)
		if err != nil {
			return nil, apperrors.NewConfigError("%v (available: %s, %s)", err, AlgoAll, strings.Join(registry.List(), ", "))
		}
		strategies = append(strategies, s)
	}
	return strategies, nil
}
