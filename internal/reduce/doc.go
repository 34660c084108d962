// Package reduce implements the even-element reduction at the heart of
// reducebench: the sum and maximum of all even values in an int32 array,
// combined into a single scalar as 2*max - sum.
//
// Three strategies compute the same reduction under different
// synchronization disciplines:
//
//   - Sequential: a single-threaded baseline pass.
//   - Locked: a fixed pool of workers updating shared accumulators under
//     one mutex, acquired and released per qualifying element.
//   - LockFree: the same pool updating an atomic sum with fetch-and-add
//     and an atomic max with a compare-and-swap retry loop.
//
// The per-element lock in the Locked strategy is deliberate: it is the
// worst-case contention baseline the comparison is built around, and must
// not be folded into per-chunk local accumulation.
//
// All strategies must produce identical results for the same input
// regardless of scheduling; the orchestration layer verifies this.
package reduce
