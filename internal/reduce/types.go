package reduce

import (
	"context"

	"github.com/agbru/reducebench/internal/progress"
)

// MaxSentinel is the initial value of the max accumulator. It survives the
// reduction untouched when the input contains no even element, and the
// combiner propagates it as 2*(-1) - 0 = -2.
const MaxSentinel int32 = -1

// Accumulator holds the pair of values a reduction folds into.
//
// Sum is 64-bit so that the worst case (10^7 elements of value 10^4) stays
// far from overflow; Max is 32-bit to match the element type. A fresh
// Accumulator is created for every strategy run; no accumulator state
// survives across strategies.
type Accumulator struct {
	// Sum is the exact sum of all even elements observed.
	Sum int64
	// Max is the largest even element observed, or MaxSentinel if none.
	Max int32
}

// NewAccumulator returns an accumulator in its initial state (zero sum,
// sentinel max).
func NewAccumulator() Accumulator {
	return Accumulator{Sum: 0, Max: MaxSentinel}
}

// Strategy is the common contract of the three reduction implementations.
//
// Reduce must treat data as immutable shared input, fold (sum, max) over
// its even elements and return the final accumulator after every worker it
// spawned has terminated. The report callback receives coarse progress
// fractions in [0, 1] and may be invoked from multiple goroutines.
type Strategy interface {
	// Name returns the identifier used for selection and reporting.
	Name() string

	// Description returns a one-line human-readable summary of the
	// synchronization discipline.
	Description() string

	// Reduce computes the even-element reduction over data using the
	// given worker count. It returns a non-nil error only when the
	// context is cancelled before completion; no partial accumulator is
	// ever returned.
	Reduce(ctx context.Context, data []int32, workers int, report progress.Callback) (Accumulator, error)
}

// isEven reports whether x qualifies for the reduction.
//
// The % operator keeps the sign of its dividend, so the comparison against
// zero holds for negative elements as well.
func isEven(x int32) bool {
	return x%2 == 0
}
