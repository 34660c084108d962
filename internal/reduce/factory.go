package reduce

import (
	"fmt"
	"sort"
)

// StrategyFactory provides access to the registered reduction strategies.
// It decouples strategy selection (config, orchestration) from the
// concrete implementations.
type StrategyFactory interface {
	// Get returns the strategy registered under name, or an error naming
	// the unknown identifier.
	Get(name string) (Strategy, error)

	// GetAll returns all registered strategies keyed by name.
	GetAll() map[string]Strategy

	// List returns the sorted registered strategy names.
	List() []string
}

// defaultFactory is the built-in registry holding the fixed three
// strategies. The set is intentionally closed: the benchmark's correctness
// argument depends on comparing exactly these synchronization disciplines.
type defaultFactory struct {
	strategies map[string]Strategy
}

// NewDefaultFactory returns a factory holding the sequential, locked and
// lock-free strategies.
func NewDefaultFactory() StrategyFactory {
	return &defaultFactory{
		strategies: map[string]Strategy{
			SequentialStrategy{}.Name(): SequentialStrategy{},
			LockedStrategy{}.Name():     LockedStrategy{},
			LockFreeStrategy{}.Name():   LockFreeStrategy{},
		},
	}
}

// Get returns the strategy registered under name.
func (f *defaultFactory) Get(name string) (Strategy, error) {
	s, ok := f.strategies[name]
	if !ok {
		return nil, fmt.Errorf("unknown strategy %q (available: %v)", name, f.List())
	}
	return s, nil
}

// GetAll returns all registered strategies keyed by name.
func (f *defaultFactory) GetAll() map[string]Strategy {
	out := make(map[string]Strategy, len(f.strategies))
	for k, v := range f.strategies {
		out[k] = v
	}
	return out
}

// List returns the sorted strategy names.
func (f *defaultFactory) List() []string {
	keys := make([]string, 0, len(f.strategies))
	for k := range f.strategies {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// CanonicalOrder returns the strategy names in reporting order: the
// sequential baseline first, then the lock-based and lock-free variants.
// Speedup figures in the report are relative to the first entry.
func CanonicalOrder() []string {
	return []string{
		SequentialStrategy{}.Name(),
		LockedStrategy{}.Name(),
		LockFreeStrategy{}.Name(),
	}
}
