// Package progress defines the types used to report reduction progress
// from the strategy implementations to the presentation layer.
package progress

// Update carries a single progress report for one strategy run.
type Update struct {
	// StrategyIndex identifies the strategy being tracked (0-based, in
	// execution order).
	StrategyIndex int
	// Value is the fraction of the input processed so far (0.0 to 1.0).
	Value float64
}

// Callback receives progress fractions from a running reduction.
// Implementations must be safe for concurrent use: parallel strategies
// invoke the callback from multiple worker goroutines.
type Callback func(value float64)

// Nop is a Callback that discards all updates.
func Nop(float64) {}
