package summation

import (
	"errors"
	"sync"

	"lukechampine.com/uint128"

	apperrors "github.com/LeeHyunWon999/multi-thread/internal/errors"
)

// ErrPoisoned is the cause carried by apperrors.PoisonedLockError when the
// accumulator's lock is unusable.
var ErrPoisoned = errors.New("previous holder terminated inside the critical section")

// SharedAccumulator is a single 128-bit value shared by several goroutines.
// Every read-modify-write happens while holding its mutex.
//
// A sync.Mutex is released by the deferred Unlock even when the holder
// panics, which would leave a possibly torn value reachable. The accumulator
// therefore records such a panic and refuses every later acquisition.
type SharedAccumulator struct {
	mu       sync.Mutex
	value    uint128.Uint128
	poisoned bool
}

// NewSharedAccumulator returns an accumulator holding zero.
func NewSharedAccumulator() *SharedAccumulator {
	return &SharedAccumulator{}
}

// With runs fn with exclusive access to the value. If fn panics, the
// accumulator is poisoned and the panic continues up the caller's stack.
func (a *SharedAccumulator) With(fn func(value *uint128.Uint128)) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.poisoned {
		return poisonedError()
	}

	completed := false
	defer func() {
		if !completed {
			a.poisoned = true
		}
	}()
	fn(&a.value)
	completed = true
	return nil
}

// Add adds delta to the value. The lock is held for the addition only.
func (a *SharedAccumulator) Add(delta uint128.Uint128) error {
	return a.With(func(value *uint128.Uint128) {
		*value = value.Add(delta)
	})
}

// Load returns the current value.
func (a *SharedAccumulator) Load() (uint128.Uint128, error) {
	var v uint128.Uint128
	err := a.With(func(value *uint128.Uint128) { v = *value })
	return v, err
}

// Poisoned reports whether a holder has terminated inside the critical section.
func (a *SharedAccumulator) Poisoned() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.poisoned
}

func poisonedError() error {
	return apperrors.PoisonedLockError{Resource: "shared accumulator", Cause: ErrPoisoned}
}
