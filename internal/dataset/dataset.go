// Package dataset generates the pseudo-random input arrays the benchmark
// reduces. Generation is intentionally unseeded: the correctness argument
// rests on cross-strategy equivalence over whatever input was drawn, not
// on reproducing a particular input across process runs.
package dataset

import (
	"math/rand"

	apperrors "github.com/agbru/reducebench/internal/errors"
)

// ValueRange is the closed interval [Min, Max] elements are drawn from.
type ValueRange struct {
	Min int32
	Max int32
}

// DefaultRange matches the baseline workload: uniform values in [0, 10000].
var DefaultRange = ValueRange{Min: 0, Max: 10000}

// Validate returns a ValidationError when the range is inverted.
func (vr ValueRange) Validate() error {
	if vr.Min > vr.Max {
		return apperrors.ValidationError{
			Field:   "value range",
			Message: "min must not exceed max",
		}
	}
	return nil
}

// Width returns the number of distinct values in the range.
func (vr ValueRange) Width() int64 {
	return int64(vr.Max) - int64(vr.Min) + 1
}

// Generate returns n values drawn uniformly from vr. The returned slice is
// shared read-only by every strategy run; callers must not mutate it while
// reductions are in flight.
func Generate(n int, vr ValueRange) ([]int32, error) {
	if n < 0 {
		return nil, apperrors.ValidationError{
			Field:   "size",
			Message: "array size must be non-negative",
		}
	}
	if err := vr.Validate(); err != nil {
		return nil, err
	}

	data := make([]int32, n)
	width := vr.Width()
	for i := range data {
		data[i] = vr.Min + int32(rand.Int63n(width))
	}
	return data, nil
}
