package player

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"roulette_sim/internal/service/roulette"
)

var ErrUnknownStrategy = errors.New("unknown strategy")

// Constructor seats a new strategy at the table
type Constructor func(table *roulette.Table) (Strategy, error)

// Registry maps strategy names to their constructors
type Registry struct {
	ctors map[string]Constructor
	mu    sync.RWMutex
}

func NewRegistry() *Registry {
	return &Registry{
		ctors: make(map[string]Constructor),
	}
}

// DefaultRegistry returns a registry holding every built-in strategy
func DefaultRegistry() *Registry {
	r := NewRegistry()

	builtins := map[string]Constructor{
		"passenger57": func(t *roulette.Table) (Strategy, error) { return NewFixedBet(t, fixedBetAmount) },
		"martingale":  func(t *roulette.Table) (Strategy, error) { return NewMartingale(t) },
		"seven_reds":  func(t *roulette.Table) (Strategy, error) { return NewSevenReds(t) },
		"random": func(t *roulette.Table) (Strategy, error) {
			return NewRandom(t, t.Minimum(), nil), nil
		},
		"1326":         func(t *roulette.Table) (Strategy, error) { return NewOneThreeTwoSix(t) },
		"cancellation": func(t *roulette.Table) (Strategy, error) { return NewCancellation(t) },
		"fibonacci":    func(t *roulette.Table) (Strategy, error) { return NewFibonacci(t) },
	}
	for name, ctor := range builtins {
		// names are unique, Register cannot fail here
		_ = r.Register(name, ctor)
	}

	return r
}

// Register adds a constructor under name
func (r *Registry) Register(name string, ctor Constructor) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.ctors[name]; exists {
		return fmt.Errorf("strategy %s is already registered", name)
	}
	r.ctors[name] = ctor
	return nil
}

// New creates the named strategy seated at table
func (r *Registry) New(name string, table *roulette.Table) (Strategy, error) {
	r.mu.RLock()
	ctor, ok := r.ctors[name]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownStrategy, name)
	}
	return ctor(table)
}

// Names returns the registered strategy names in sorted order
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.ctors))
	for name := range r.ctors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
