package app

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"syscall"
	"time"

	"github.com/agbru/reducebench/internal/cli"
	"github.com/agbru/reducebench/internal/dataset"
	apperrors "github.com/agbru/reducebench/internal/errors"
	"github.com/agbru/reducebench/internal/logging"
	"github.com/agbru/reducebench/internal/metrics"
	"github.com/agbru/reducebench/internal/orchestration"
	"github.com/agbru/reducebench/internal/server"
	"github.com/agbru/reducebench/internal/sysmon"
	"github.com/agbru/reducebench/internal/tui"
	"github.com/agbru/reducebench/internal/ui"
)

// runBenchmark orchestrates a complete benchmark invocation: input
// generation, the trial loop over the selected strategies, equivalence
// analysis and report output.
func (a *Application) runBenchmark(ctx context.Context, out io.Writer) int {
	logger := logging.NewDefaultLogger()

	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancelTimeout()
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	var srv *server.Server
	if a.Config.MetricsAddr != "" {
		srv = server.NewServer(a.Config.MetricsAddr, server.NewMetrics(), logger)
		srv.Start()
		defer func() {
			if err := srv.Shutdown(context.Background()); err != nil {
				logger.Error("metrics server shutdown failed", err)
			}
		}()
	}

	startTime := time.Now()
	data, err := dataset.Generate(a.Config.Size, dataset.ValueRange{
		Min: int32(a.Config.MinValue),
		Max: int32(a.Config.MaxValue),
	})
	if err != nil {
		fmt.Fprintf(a.ErrWriter, "Error generating input: %v\n", err)
		return apperrors.ExitErrorConfig
	}
	logger.Debug("input generated",
		logging.Int("size", a.Config.Size),
		logging.Dur("elapsed", time.Since(startTime)))

	strategiesToRun := orchestration.GetStrategiesToRun(a.Config.Algo, a.Factory)

	if a.Config.TUI {
		return tui.Run(ctx, strategiesToRun, data, a.Config, Version)
	}

	if !a.Config.Quiet {
		cli.PrintExecutionConfig(a.Config, out)
		cli.PrintExecutionMode(strategiesToRun, out)
	}

	var progressReporter orchestration.ProgressReporter
	progressOut := out
	if a.Config.Quiet {
		progressOut = io.Discard
		progressReporter = orchestration.NullProgressReporter{}
	} else {
		progressReporter = cli.CLIProgressReporter{}
	}

	memBefore := metrics.NewMemoryCollector().Snapshot()

	var firstTrial, results []orchestration.RunResult
	for trial := 1; trial <= a.Config.Trials; trial++ {
		if !a.Config.Quiet && a.Config.Trials > 1 {
			fmt.Fprintf(out, "%sTrial %d/%d%s\n", ui.ColorSecondary(), trial, a.Config.Trials, ui.ColorReset())
		}

		if srv != nil {
			for range strategiesToRun {
				srv.Metrics().RunStarted()
			}
		}
		results = orchestration.ExecuteStrategies(ctx, strategiesToRun, data, a.Config.Workers, progressReporter, progressOut)
		if srv != nil {
			for _, res := range results {
				srv.Metrics().RunCompleted(res.Name, res.Duration, res.Err)
			}
		}

		if trial == 1 {
			firstTrial = results
			continue
		}
		if err := orchestration.VerifyTrialReproducibility(firstTrial, results); err != nil {
			fmt.Fprintf(out, "\nGlobal Status: CRITICAL ERROR! Trial %d diverged from trial 1.\n", trial)
			return cli.CLIErrorHandler{}.HandleError(err, time.Since(startTime), out)
		}
	}

	return a.analyzeResultsWithOutput(results, memBefore, out)
}

// analyzeResultsWithOutput validates cross-strategy equivalence, emits the
// report in the configured form and persists it when requested.
func (a *Application) analyzeResultsWithOutput(results []orchestration.RunResult, memBefore metrics.MemorySnapshot, out io.Writer) int {
	if a.Config.Quiet {
		return a.analyzeQuiet(results, out)
	}

	presOpts := orchestration.PresentationOptions{
		Size:    a.Config.Size,
		Workers: a.Config.Workers,
		Trials:  a.Config.Trials,
		Verbose: a.Config.Verbose,
	}
	exitCode := orchestration.AnalyzeComparisonResults(results, presOpts, cli.CLIResultPresenter{}, cli.CLIErrorHandler{}, out)

	if a.Config.Verbose {
		fmt.Fprintln(out)
		cli.PrintMemoryReport(metrics.Delta(memBefore, metrics.NewMemoryCollector().Snapshot()), out)
		cli.PrintSystemReport(sysmon.Sample(), out)
	}

	if exitCode == apperrors.ExitSuccess && a.Config.OutputFile != "" {
		if err := a.saveReport(results, out); err != nil {
			return apperrors.ExitErrorGeneric
		}
	}
	return exitCode
}

// analyzeQuiet handles the script-friendly output mode: equivalence is
// still enforced, but the only stdout line is the combined result.
func (a *Application) analyzeQuiet(results []orchestration.RunResult, out io.Writer) int {
	exitCode := orchestration.AnalyzeComparisonResults(results,
		orchestration.PresentationOptions{}, silentPresenter{}, cli.CLIErrorHandler{}, a.ErrWriter)
	if exitCode != apperrors.ExitSuccess {
		return exitCode
	}

	for _, res := range results {
		if res.Err == nil {
			cli.DisplayQuietResult(res.Combined, out)
			break
		}
	}

	if a.Config.OutputFile != "" {
		if err := a.saveReport(results, io.Discard); err != nil {
			return apperrors.ExitErrorGeneric
		}
	}
	return apperrors.ExitSuccess
}

// saveReport persists the run report and confirms the path on out.
func (a *Application) saveReport(results []orchestration.RunResult, out io.Writer) error {
	if err := cli.WriteReportToFile(results, a.Config, time.Now()); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error saving report: %v\n", err)
		return err
	}
	fmt.Fprintf(out, "\n%sReport saved to: %s%s%s\n",
		ui.ColorSuccess(), ui.ColorInfo(), a.Config.OutputFile, ui.ColorReset())
	return nil
}

// silentPresenter suppresses all presentation for quiet mode while the
// analysis still runs.
type silentPresenter struct{}

func (silentPresenter) PresentComparisonTable(_ []orchestration.RunResult, _ io.Writer) {}

func (silentPresenter) PresentRunResult(_ orchestration.RunResult, _ orchestration.PresentationOptions, _ io.Writer) {
}
