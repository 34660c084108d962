package reduce

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/agbru/reducebench/internal/progress"
)

// LockFreeStrategy spawns one worker per partition chunk; workers share an
// atomic 64-bit sum updated with an unconditional fetch-and-add and an
// atomic 32-bit max updated with a compare-and-swap retry loop.
//
// The CAS loop is the classic optimistic pattern: reload the current max
// on failure and retry only while the candidate is still strictly greater.
// A failed attempt means another worker made forward progress, which is
// what guarantees lock-freedom. The max is monotonically non-decreasing
// over the run, so a stale comparison value costs at most an extra retry
// and can never lose an update.
//
// Go's sync/atomic operations are sequentially consistent, stronger than
// the relaxed ordering a C++ rendition would use; the invariant that
// matters is preserved either way: accumulators are read only after the
// join barrier, so the single-threaded reader observes every worker's
// completed updates.
type LockFreeStrategy struct{}

// Name returns the strategy identifier.
func (LockFreeStrategy) Name() string { return "lockfree" }

// Description returns a one-line summary of the strategy.
func (LockFreeStrategy) Description() string {
	return "atomic fetch-and-add sum, compare-and-swap retry loop for max"
}

// Reduce runs the lock-free reduction with the given worker count.
func (LockFreeStrategy) Reduce(ctx context.Context, data []int32, workers int, report progress.Callback) (Accumulator, error) {
	if workers < 1 {
		workers = 1
	}

	var (
		sum atomic.Int64
		max atomic.Int32
	)
	max.Store(MaxSentinel)

	chunks := Partition(len(data), workers)
	var done atomic.Int32

	var g errgroup.Group
	for _, chunk := range chunks {
		chunk := chunk
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			for _, x := range data[chunk.Start:chunk.End] {
				if isEven(x) {
					sum.Add(int64(x))
					installMax(&max, x)
				}
			}
			report(float64(done.Add(1)) / float64(len(chunks)))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Accumulator{}, err
	}
	return Accumulator{Sum: sum.Load(), Max: max.Load()}, nil
}

// installMax raises the shared max to x if x is strictly greater, retrying
// around concurrent writers until x is installed or no longer qualifies.
func installMax(max *atomic.Int32, x int32) {
	for {
		current := max.Load()
		if x <= current {
			return
		}
		if max.CompareAndSwap(current, x) {
			return
		}
	}
}
