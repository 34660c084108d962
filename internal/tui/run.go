package tui

import (
	"context"
	"errors"
	"io"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/agbru/reducebench/internal/config"
	apperrors "github.com/agbru/reducebench/internal/errors"
	"github.com/agbru/reducebench/internal/orchestration"
	"github.com/agbru/reducebench/internal/progress"
	"github.com/agbru/reducebench/internal/reduce"
)

// Run executes the strategies under the live dashboard and blocks until
// the user quits or the run finishes and is dismissed.
//
// Returns:
//   - int: The process exit code for the run.
func Run(ctx context.Context, strategies []reduce.Strategy, data []int32, cfg config.AppConfig, version string) int {
	model := NewModel(ctx, strategies, cfg, version)
	program := tea.NewProgram(model, tea.WithContext(ctx))

	go executeForDashboard(ctx, program, strategies, data, cfg)

	finalModel, err := program.Run()
	if err != nil {
		switch {
		case errors.Is(ctx.Err(), context.DeadlineExceeded):
			return apperrors.ExitErrorTimeout
		case errors.Is(ctx.Err(), context.Canceled):
			return apperrors.ExitErrorCanceled
		default:
			return apperrors.ExitErrorGeneric
		}
	}

	if m, ok := finalModel.(Model); ok {
		return m.exitCode
	}
	return apperrors.ExitErrorGeneric
}

// executeForDashboard runs the benchmark and feeds the dashboard with
// progress and completion messages.
func executeForDashboard(ctx context.Context, program *tea.Program, strategies []reduce.Strategy, data []int32, cfg config.AppConfig) {
	reporter := orchestration.ProgressReporterFunc(
		func(wg *sync.WaitGroup, updates <-chan progress.Update, _ int, _ io.Writer) {
			defer wg.Done()
			for u := range updates {
				program.Send(progressMsg{index: u.StrategyIndex, value: u.Value})
			}
		})

	results := orchestration.ExecuteStrategies(ctx, strategies, data, cfg.Workers, reporter, io.Discard)

	exitCode := orchestration.AnalyzeComparisonResults(results,
		orchestration.PresentationOptions{Size: cfg.Size, Workers: cfg.Workers},
		discardPresenter{}, discardErrorHandler{}, io.Discard)

	program.Send(doneMsg{results: results, exitCode: exitCode})
}

// discardPresenter suppresses textual presentation; the dashboard renders
// the results itself.
type discardPresenter struct{}

func (discardPresenter) PresentComparisonTable(_ []orchestration.RunResult, _ io.Writer) {}

func (discardPresenter) PresentRunResult(_ orchestration.RunResult, _ orchestration.PresentationOptions, _ io.Writer) {
}

// discardErrorHandler maps errors to exit codes without output.
type discardErrorHandler struct{}

func (discardErrorHandler) HandleError(err error, _ time.Duration, _ io.Writer) int {
	return apperrors.HandleRunError(err, 0, io.Discard, apperrors.NoColorProvider{})
}
