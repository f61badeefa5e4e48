//go:generate mockgen -source=strategy.go -destination=mocks/mock_strategy.go -package=mocks

package summation

import (
	"context"
	"fmt"
	"sync"

	"lukechampine.com/uint128"

	"github.com/LeeHyunWon999/multi-thread/internal/progress"
)

// Strategy is one way of summing the benchmark range.
type Strategy interface {
	// Name returns the registry name of the strategy (e.g. "partition4").
	Name() string
	// Workers returns the number of worker goroutines the strategy forks.
	Workers() int
	// Sum computes the range sum. report receives per-worker completion
	// fractions and may be nil.
	Sum(ctx context.Context, report progress.ProgressCallback) (uint128.Uint128, error)
}

// Registry holds the available strategies by name, preserving registration
// order so that listings match the order runs are presented in.
type Registry struct {
	mu         sync.RWMutex
	order      []string
	strategies map[string]Strategy
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{strategies: make(map[string]Strategy)}
}

// NewDefaultRegistry returns a registry holding every built-in strategy.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	for _, s := range []Strategy{
		NewSequential(),
		NewPartitioned(NamePartition4, Plan4),
		NewPartitioned(NamePartition8, Plan8),
		NewMutexAccumulated(NameMutex8, Plan8x50),
		NewChannelReduced(NameChannel8, Plan8x50),
	} {
		if err := r.Register(s); err != nil {
			panic(err)
		}
	}
	return r
}

// Register adds s under its name. Registering a name twice is an error.
func (r *Registry) Register(s Strategy) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	name := s.Name()
	if _, exists := r.strategies[name]; exists {
		return fmt.Errorf("strategy %q already registered", name)
	}
	r.strategies[name] = s
	r.order = append(r.order, name)
	return nil
}

// Get returns the strategy registered under name.
func (r *Registry) Get(name string) (Strategy, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.strategies[name]
	if !ok {
		return nil, fmt.Errorf("unknown strategy %q", name)
	}
	return s, nil
}

// MustGet is like Get but panics for unknown names.
func (r *Registry) MustGet(name string) Strategy {
	s, err := r.Get(name)
	if err != nil {
		panic(err)
	}
	return s
}

// List returns the registered names in registration order.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string(nil), r.order...)
}

// GetAll returns the registered strategies in registration order.
func (r *Registry) GetAll() []Strategy {
	r.mu.RLock()
	defer r.mu.RUnlock()
	all := make([]Strategy, 0, len(r.order))
	for _, name := range r.order {
		all = append(all, r.strategies[name])
	}
	return all
}
