package orchestration

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	apperrors "github.com/agbru/reducebench/internal/errors"
	"github.com/agbru/reducebench/internal/progress"
	"github.com/agbru/reducebench/internal/reduce"
)

// ProgressBufferMultiplier defines the buffer size multiplier for the
// progress channel. A larger buffer reduces the likelihood of blocking
// worker goroutines when the UI is slow to consume updates.
const ProgressBufferMultiplier = 8

// tracerName identifies this package's spans.
const tracerName = "github.com/agbru/reducebench/internal/orchestration"

// ExecuteStrategies runs the given strategies one after another over the
// shared read-only data, timing each.
//
// Runs are deliberately serial, unlike a race-to-the-answer comparison:
// each parallel strategy saturates the worker pool on its own, and the
// report compares their wall-clock times, so overlapping them would
// corrupt the measurement. The join barrier the concurrency model requires
// lives inside each strategy's Reduce.
//
// Progress updates flow over a buffered channel to the reporter goroutine;
// updates are dropped rather than ever blocking a worker.
//
// Parameters:
//   - ctx: The context carrying the timeout/signal lifecycle.
//   - strategies: The strategies to execute, in reporting order.
//   - data: The shared immutable input.
//   - workers: Worker count for the parallel strategies.
//   - reporter: Progress display (NullProgressReporter for quiet mode).
//   - out: Writer for progress output.
//
// Returns:
//   - []RunResult: One result per strategy, in input order.
func ExecuteStrategies(ctx context.Context, strategies []reduce.Strategy, data []int32, workers int, reporter ProgressReporter, out io.Writer) []RunResult {
	results := make([]RunResult, len(strategies))
	updates := make(chan progress.Update, len(strategies)*ProgressBufferMultiplier)

	var displayWg sync.WaitGroup
	displayWg.Add(1)
	go reporter.DisplayProgress(&displayWg, updates, len(strategies), out)

	tracer := otel.Tracer(tracerName)

	for i, strategy := range strategies {
		runCtx, span := tracer.Start(ctx, "reduce."+strategy.Name(),
			trace.WithAttributes(
				attribute.Int("reducebench.workers", workers),
				attribute.Int("reducebench.size", len(data)),
			))

		report := func(v float64) {
			select {
			case updates <- progress.Update{StrategyIndex: i, Value: v}:
			default:
			}
		}

		startTime := time.Now()
		acc, err := strategy.Reduce(runCtx, data, workers, report)
		elapsed := time.Since(startTime)

		res := RunResult{Name: strategy.Name(), Duration: elapsed}
		if err != nil {
			res.Err = apperrors.ReductionError{Strategy: strategy.Name(), Cause: err}
			span.RecordError(err)
		} else {
			res.SumEven = acc.Sum
			res.MaxEven = acc.Max
			res.Combined = reduce.Combine(acc)
			span.SetAttributes(attribute.Int64("reducebench.combined", res.Combined))
		}
		span.End()
		results[i] = res
	}

	close(updates)
	displayWg.Wait()

	return results
}

// AnalyzeComparisonResults processes the results from the strategies and
// generates the summary report.
//
// It validates cross-strategy equivalence — the central correctness
// property — against the sequential baseline when present, or the first
// successful run otherwise, and displays a comparative table. A divergence
// is a critical failure with its own exit code.
//
// Parameters:
//   - results: The run results to analyze, in reporting order.
//   - opts: Presentation options.
//   - presenter: The result presenter for display formatting.
//   - errHandler: Maps a failure to an exit code.
//   - out: The io.Writer for the summary report.
//
// Returns:
//   - int: An exit code indicating success (0) or the type of failure.
func AnalyzeComparisonResults(results []RunResult, opts PresentationOptions, presenter ResultPresenter, errHandler ErrorHandler, out io.Writer) int {
	reference := findReference(results)

	var firstError error
	for i := range results {
		if results[i].Err != nil && firstError == nil {
			firstError = results[i].Err
		}
	}

	presenter.PresentComparisonTable(results, out)

	if reference == nil {
		fmt.Fprintf(out, "\nGlobal Status: Failure. No strategy completed the reduction.\n")
		return errHandler.HandleError(firstError, 0, out)
	}

	for _, res := range results {
		if res.Err != nil {
			continue
		}
		if res.Combined != reference.Combined || res.MaxEven != reference.MaxEven || res.SumEven != reference.SumEven {
			fmt.Fprintf(out, "\nGlobal Status: CRITICAL ERROR! Strategies disagree on the reduction result.\n")
			return errHandler.HandleError(apperrors.MismatchError{
				Strategy: res.Name,
				Got:      res.Combined,
				Want:     reference.Combined,
			}, res.Duration, out)
		}
	}

	if firstError != nil {
		// Consistent survivors, but at least one strategy failed.
		fmt.Fprintf(out, "\nGlobal Status: Partial failure.\n")
		return errHandler.HandleError(firstError, 0, out)
	}

	fmt.Fprintf(out, "\nGlobal Status: Success. All strategies agree.\n")
	presenter.PresentRunResult(*reference, opts, out)
	return apperrors.ExitSuccess
}

// VerifyTrialReproducibility checks that a later trial reproduced the
// first trial's combined results exactly, strategy by strategy.
func VerifyTrialReproducibility(first, current []RunResult) error {
	if len(first) != len(current) {
		return apperrors.NewConfigError("trial produced %d results, want %d", len(current), len(first))
	}
	for i := range first {
		if first[i].Err != nil || current[i].Err != nil {
			continue
		}
		if current[i].Combined != first[i].Combined {
			return apperrors.MismatchError{
				Strategy: current[i].Name,
				Got:      current[i].Combined,
				Want:     first[i].Combined,
			}
		}
	}
	return nil
}

// findReference picks the equivalence reference: the sequential baseline
// when it succeeded, otherwise the first successful run.
func findReference(results []RunResult) *RunResult {
	for i := range results {
		if results[i].Err == nil && results[i].Name == (reduce.SequentialStrategy{}).Name() {
			return &results[i]
		}
	}
	for i := range results {
		if results[i].Err == nil {
			return &results[i]
		}
	}
	return nil
}
