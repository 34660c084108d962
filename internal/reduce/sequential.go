package reduce

import (
	"context"

	"github.com/agbru/reducebench/internal/progress"
)

// sequentialProgressStride is the element interval at which the sequential
// pass reports progress and polls for cancellation. Coarse enough to be
// invisible in the timing of a 10M-element pass.
const sequentialProgressStride = 1 << 20

// SequentialStrategy is the single-threaded baseline: one ordered pass over
// the full input, no synchronization. Its result is the reference the two
// parallel strategies are checked against.
type SequentialStrategy struct{}

// Name returns the strategy identifier.
func (SequentialStrategy) Name() string { return "sequential" }

// Description returns a one-line summary of the strategy.
func (SequentialStrategy) Description() string {
	return "single-threaded baseline pass, no synchronization"
}

// Reduce folds (sum, max) over the even elements of data in index order.
// The workers argument is ignored; the pass always runs on the calling
// goroutine.
func (SequentialStrategy) Reduce(ctx context.Context, data []int32, _ int, report progress.Callback) (Accumulator, error) {
	acc := NewAccumulator()

	for i, x := range data {
		if isEven(x) {
			acc.Sum += int64(x)
			if x > acc.Max {
				acc.Max = x
			}
		}
		if (i+1)%sequentialProgressStride == 0 {
			if err := ctx.Err(); err != nil {
				return Accumulator{}, err
			}
			report(float64(i+1) / float64(len(data)))
		}
	}

	report(1.0)
	return acc, nil
}
