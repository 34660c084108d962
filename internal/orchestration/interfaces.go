package orchestration

import (
	"io"
	"sync"
	"time"

	"github.com/agbru/reducebench/internal/progress"
)

// RunResult encapsulates the outcome of a single strategy run.
// It serves as the shared domain type between orchestration and
// presentation layers.
type RunResult struct {
	// Name is the identifier of the strategy (e.g., "lockfree").
	Name string
	// Combined is the scalar 2*max - sum. Meaningless when Err is set.
	Combined int64
	// SumEven is the sum of all even elements.
	SumEven int64
	// MaxEven is the maximum even element, or -1 if none.
	MaxEven int32
	// Duration is the wall-clock time the run took.
	Duration time.Duration
	// Err contains any error that occurred during the run.
	Err error
}

// PresentationOptions configures how results are presented to the user.
type PresentationOptions struct {
	// Size is the input array length.
	Size int
	// Workers is the configured worker count.
	Workers int
	// Trials is the configured trial count.
	Trials int
	// Verbose enables the extended report sections.
	Verbose bool
}

// ProgressReporter defines the interface for displaying run progress.
// This interface decouples the orchestration layer from the presentation
// layer; implementations handle the visual representation (spinner, TUI
// bars) while orchestration focuses on coordinating the runs.
type ProgressReporter interface {
	// DisplayProgress starts displaying progress updates from the channel.
	// It should be called in a separate goroutine and will run until the
	// updates channel is closed.
	//
	// Parameters:
	//   - wg: A WaitGroup to signal when display is complete.
	//   - updates: Channel receiving progress updates from the strategies.
	//   - numStrategies: The number of strategies being tracked.
	//   - out: The writer for progress output.
	DisplayProgress(wg *sync.WaitGroup, updates <-chan progress.Update, numStrategies int, out io.Writer)
}

// ProgressReporterFunc is a function adapter that implements ProgressReporter.
type ProgressReporterFunc func(wg *sync.WaitGroup, updates <-chan progress.Update, numStrategies int, out io.Writer)

// DisplayProgress calls the underlying function.
func (f ProgressReporterFunc) DisplayProgress(wg *sync.WaitGroup, updates <-chan progress.Update, numStrategies int, out io.Writer) {
	f(wg, updates, numStrategies, out)
}

// NullProgressReporter is a no-op implementation of ProgressReporter.
// It drains the updates channel without displaying anything.
// Useful for quiet mode or testing.
type NullProgressReporter struct{}

// DisplayProgress drains the channel without output.
func (NullProgressReporter) DisplayProgress(wg *sync.WaitGroup, updates <-chan progress.Update, _ int, _ io.Writer) {
	defer wg.Done()
	for range updates {
		// Drain channel silently
	}
}

// ResultPresenter defines the interface for presenting run results,
// allowing different output formats (CLI, TUI) without modifying the
// orchestration logic.
type ResultPresenter interface {
	// PresentComparisonTable displays the comparison summary table.
	PresentComparisonTable(results []RunResult, out io.Writer)

	// PresentRunResult displays one strategy's final result block.
	PresentRunResult(result RunResult, opts PresentationOptions, out io.Writer)
}

// ErrorHandler handles run errors and returns exit codes.
type ErrorHandler interface {
	HandleError(err error, duration time.Duration, out io.Writer) int
}
