package reduce

import (
	"context"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/agbru/reducebench/internal/progress"
)

// LockedStrategy spawns one worker per partition chunk; every worker
// updates the shared (sum, max) pair under a single mutex, taking and
// releasing the lock once per qualifying element.
//
// The per-element critical section is the point of this strategy: it is
// the worst-case contention baseline the benchmark compares against, and
// replacing it with per-chunk local folding would invalidate the
// comparison. The combined update inside the critical section is atomic
// with respect to other critical sections, so no update is lost and no
// torn (sum, max) pair is ever observed.
type LockedStrategy struct{}

// Name returns the strategy identifier.
func (LockedStrategy) Name() string { return "locked" }

// Description returns a one-line summary of the strategy.
func (LockedStrategy) Description() string {
	return "shared accumulators guarded by one mutex, locked per even element"
}

// Reduce runs the lock-based reduction with the given worker count.
// Wait on the errgroup is the join barrier: the accumulators are read only
// after every worker has terminated.
func (LockedStrategy) Reduce(ctx context.Context, data []int32, workers int, report progress.Callback) (Accumulator, error) {
	if workers < 1 {
		workers = 1
	}

	var (
		mu  sync.Mutex
		acc = NewAccumulator()
	)

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
					mu.Lock()
					acc.Sum += int64(x)
					if x > acc.Max {
						acc.Max = x
					}
					mu.Unlock()
				}
			}
			report(float64(done.Add(1)) / float64(len(chunks)))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Accumulator{}, err
	}
	return acc, nil
}
