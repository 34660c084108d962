// Package cli implements the terminal presentation layer: progress
// spinner, result reports, the comparison table and report-file output.
package cli

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"

	apperrors "github.com/agbru/reducebench/internal/errors"
	"github.com/agbru/reducebench/internal/format"
	"github.com/agbru/reducebench/internal/orchestration"
	"github.com/agbru/reducebench/internal/progress"
	"github.com/agbru/reducebench/internal/ui"
)

// CLIProgressReporter displays progress with a terminal spinner.
type CLIProgressReporter struct{}

// DisplayProgress delegates to the spinner-based progress display.
func (CLIProgressReporter) DisplayProgress(wg *sync.WaitGroup, updates <-chan progress.Update, numStrategies int, out io.Writer) {
	DisplayProgress(wg, updates, numStrategies, out)
}

// CLIResultPresenter renders results for terminal output.
type CLIResultPresenter struct{}

// tableStyle frames the comparison table. Colors inside the rows come from
// the ANSI theme so --no-color strips them uniformly.
var tableStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(ui.DarkTUITheme.Border).
	Padding(0, 1)

// PresentComparisonTable displays the per-strategy comparison summary.
// The speedup column is relative to the sequential baseline when present,
// otherwise to the first successful run.
func (CLIResultPresenter) PresentComparisonTable(results []orchestration.RunResult, out io.Writer) {
	baseline := time.Duration(0)
	for _, r := range results {
		if r.Err == nil && r.Name == "sequential" {
			baseline = r.Duration
			break
		}
	}
	if baseline == 0 {
		for _, r := range results {
			if r.Err == nil {
				baseline = r.Duration
				break
			}
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%-12s %14s %9s %s\n", "STRATEGY", "DURATION", "SPEEDUP", "STATUS")
	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(&b, "%-12s %14s %9s %sFAILED%s",
				r.Name, "-", "-", ui.ColorError(), ui.ColorReset())
		} else {
			fmt.Fprintf(&b, "%-12s %14s %9s %sOK%s",
				r.Name,
				format.FormatExecutionDuration(r.Duration),
				format.FormatSpeedup(baseline, r.Duration),
				ui.ColorSuccess(), ui.ColorReset())
		}
		b.WriteByte('\n')
	}

	fmt.Fprintln(out, tableStyle.Render(strings.TrimRight(b.String(), "\n")))
}

// PresentRunResult displays one strategy's final result block, mirroring
// the per-strategy report shape.
func (CLIResultPresenter) PresentRunResult(result orchestration.RunResult, opts orchestration.PresentationOptions, out io.Writer) {
	fmt.Fprintf(out, "%s%s%s version:%s\n",
		ui.ColorBold(), ui.ColorPrimary(), titleCase(result.Name), ui.ColorReset())
	fmt.Fprintf(out, "  Result = %s2*max - sum = %d%s\n",
		ui.ColorSuccess(), result.Combined, ui.ColorReset())
	if result.MaxEven == -1 {
		fmt.Fprintf(out, "  Maximum even number = %snone%s\n", ui.ColorSecondary(), ui.ColorReset())
	} else {
		fmt.Fprintf(out, "  Maximum even number = %d\n", result.MaxEven)
	}
	fmt.Fprintf(out, "  Sum of even numbers = %s\n", format.FormatCount(result.SumEven))
	fmt.Fprintf(out, "  Execution time = %s\n", format.FormatSeconds(result.Duration))
	if opts.Verbose {
		fmt.Fprintf(out, "  Workers = %d, input size = %s\n",
			opts.Workers, format.FormatCount(int64(opts.Size)))
	}
}

// titleCase uppercases the first rune for the report heading.
func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// CLIErrorHandler maps run errors to diagnostics and exit codes using the
// active color theme.
type CLIErrorHandler struct{}

// HandleError delegates to the shared error reporting with themed colors.
func (CLIErrorHandler) HandleError(err error, duration time.Duration, out io.Writer) int {
	return apperrors.HandleRunError(err, duration, out, CLIColorProvider{})
}

// CLIColorProvider adapts the active UI theme to the error-reporting
// color interface.
type CLIColorProvider struct{}

// ErrorColor returns the theme's error escape code.
func (CLIColorProvider) ErrorColor() string { return ui.ColorError() }

// WarningColor returns the theme's warning escape code.
func (CLIColorProvider) WarningColor() string { return ui.ColorWarning() }

// ResetColor returns the theme's reset escape code.
func (CLIColorProvider) ResetColor() string { return ui.ColorReset() }
