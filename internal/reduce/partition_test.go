package reduce

import (
	"testing"
)

// TestPartitionCoverage verifies that chunks tile [0, n) exactly once for a
// grid of sizes and worker counts, including every degenerate shape the
// partitioner must survive.
func TestPartitionCoverage(t *testing.T) {
	tests := []struct {
		name    string
		n       int
		workers int
	}{
		{"even split", 100, 4},
		{"remainder to last worker", 10, 3},
		{"single worker", 17, 1},
		{"empty input", 0, 8},
		{"single element many workers", 1, 32},
		{"fewer elements than workers", 5, 32},
		{"workers equals n", 7, 7},
		{"large", 10_000_000, 32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chunks := Partition(tt.n, tt.workers)

			if len(chunks) != tt.workers {
				t.Fatalf("Partition(%d, %d) returned %d chunks, want %d",
					tt.n, tt.workers, len(chunks), tt.workers)
			}

			covered := 0
			prevEnd := 0
			for i, c := range chunks {
				if c.Start > c.End {
					t.Errorf("chunk %d inverted: [%d, %d)", i, c.Start, c.End)
				}
				if c.Start != prevEnd {
					t.Errorf("chunk %d starts at %d, want %d (gap or overlap)", i, c.Start, prevEnd)
				}
				covered += c.Len()
				prevEnd = c.End
			}
			if covered != tt.n {
				t.Errorf("chunks cover %d elements, want %d", covered, tt.n)
			}
			if prevEnd != tt.n {
				t.Errorf("last chunk ends at %d, want %d", prevEnd, tt.n)
			}
		})
	}
}

// TestPartitionRemainderAbsorption verifies the final worker absorbs the
// remainder when n is not divisible by the worker count.
func TestPartitionRemainderAbsorption(t *testing.T) {
	chunks := Partition(10, 3)

	want := []Chunk{{0, 3}, {3, 6}, {6, 10}}
	for i, c := range chunks {
		if c != want[i] {
			t.Errorf("chunk %d = %+v, want %+v", i, c, want[i])
		}
	}
}

// TestPartitionSingleElementManyWorkers covers one element split across
// 32 workers: 31 empty chunks and one chunk [0, 1).
func TestPartitionSingleElementManyWorkers(t *testing.T) {
	chunks := Partition(1, 32)

	empty := 0
	for _, c := range chunks[:31] {
		if c.Len() == 0 {
			empty++
		}
	}
	if empty != 31 {
		t.Errorf("got %d empty leading chunks, want 31", empty)
	}
	last := chunks[31]
	if last.Start != 0 || last.End != 1 {
		t.Errorf("final chunk = [%d, %d), want [0, 1)", last.Start, last.End)
	}
}

// TestPartitionDefensiveArguments verifies the clamps on nonsensical
// arguments rather than a panic.
func TestPartitionDefensiveArguments(t *testing.T) {
	if got := Partition(-3, 4); len(got) != 4 || got[3].End != 0 {
		t.Errorf("Partition(-3, 4) = %v, want four empty chunks", got)
	}
	if got := Partition(9, 0); len(got) != 1 || got[0] != (Chunk{0, 9}) {
		t.Errorf("Partition(9, 0) = %v, want single full chunk", got)
	}
}
