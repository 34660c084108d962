package orchestration

import (
	"github.com/agbru/reducebench/internal/reduce"
)

// GetStrategiesToRun determines which strategies should be executed based
// on the configured selection. For "all" the strategies come back in
// canonical reporting order (sequential baseline first) so that speedup
// figures have a stable reference.
//
// Parameters:
//   - algo: The strategy name from configuration, or "all".
//   - factory: The strategy factory to retrieve implementations from.
//
// Returns:
//   - []reduce.Strategy: The strategies to execute, or nil for an unknown
//     name (configuration validation should have caught that earlier).
func GetStrategiesToRun(algo string, factory reduce.StrategyFactory) []reduce.Strategy {
	if algo == "all" {
		order := reduce.CanonicalOrder()
		strategies := make([]reduce.Strategy, 0, len(order))
		for _, name := range order {
			if s, err := factory.Get(name); err == nil {
				strategies = append(strategies, s)
			}
		}
		return strategies
	}
	if s, err := factory.Get(algo); err == nil {
		return []reduce.Strategy{s}
	}
	return nil
}
