package reduce

// Chunk is a half-open index range [Start, End) of the input assigned to
// exactly one worker. An empty chunk (Start == End) contributes nothing.
type Chunk struct {
	Start int
	End   int
}

// Len returns the number of elements covered by the chunk.
func (c Chunk) Len() int {
	return c.End - c.Start
}

// Partition splits an input of length n into workers contiguous,
// non-overlapping chunks. Worker i < workers-1 receives exactly n/workers
// elements; the final worker absorbs the remainder so that the union of
// all chunks is [0, n) with no gaps or overlaps, for any n >= 0 and
// workers >= 1.
//
// When n < workers the leading chunks may be empty and the final chunk's
// nominal start would exceed n; the start is clamped so Start <= End holds
// for every returned chunk.
func Partition(n, workers int) []Chunk {
	if workers < 1 {
		workers = 1
	}
	if n < 0 {
		n = 0
	}

	chunkSize := n / workers
	chunks := make([]Chunk, workers)
	for i := 0; i < workers-1; i++ {
		chunks[i] = Chunk{Start: i * chunkSize, End: (i + 1) * chunkSize}
	}

	lastStart := (workers - 1) * chunkSize
	if lastStart > n {
		lastStart = n
	}
	chunks[workers-1] = Chunk{Start: lastStart, End: n}

	return chunks
}
