package cli

import (
	"fmt"
	"io"
	"runtime"

	"github.com/agbru/reducebench/internal/config"
	"github.com/agbru/reducebench/internal/format"
	"github.com/agbru/reducebench/internal/metrics"
	"github.com/agbru/reducebench/internal/reduce"
	"github.com/agbru/reducebench/internal/sysmon"
	"github.com/agbru/reducebench/internal/ui"
)

// PrintExecutionConfig displays the resolved run parameters before the
// strategies start.
func PrintExecutionConfig(cfg config.AppConfig, out io.Writer) {
	fmt.Fprintf(out, "%s%sEven-element reduction benchmark%s\n",
		ui.ColorBold(), ui.ColorUnderline(), ui.ColorReset())
	fmt.Fprintf(out, "  Input size  : %s int32 elements\n", format.FormatCount(int64(cfg.Size)))
	fmt.Fprintf(out, "  Value range : [%d, %d]\n", cfg.MinValue, cfg.MaxValue)
	fmt.Fprintf(out, "  Workers     : %d (host has %d CPUs)\n", cfg.Workers, runtime.NumCPU())
	if cfg.Trials > 1 {
		fmt.Fprintf(out, "  Trials      : %d\n", cfg.Trials)
	}
	fmt.Fprintf(out, "  Timeout     : %s\n", cfg.Timeout)
	fmt.Fprintln(out)
}

// PrintExecutionMode announces which strategies the invocation will run.
func PrintExecutionMode(strategies []reduce.Strategy, out io.Writer) {
	if len(strategies) == 1 {
		fmt.Fprintf(out, "%sRunning single strategy: %s%s\n\n",
			ui.ColorInfo(), strategies[0].Name(), ui.ColorReset())
		return
	}
	fmt.Fprintf(out, "%sComparing %d strategies:%s\n", ui.ColorInfo(), len(strategies), ui.ColorReset())
	for _, s := range strategies {
		fmt.Fprintf(out, "  %s%-12s%s %s\n", ui.ColorPrimary(), s.Name(), ui.ColorReset(), s.Description())
	}
	fmt.Fprintln(out)
}

// PrintMemoryReport displays the verbose memory section from a snapshot
// delta taken around the strategy runs.
func PrintMemoryReport(delta metrics.MemorySnapshot, out io.Writer) {
	fmt.Fprintf(out, "%sMemory usage:%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(out, "  Heap in use   : %s\n", format.FormatBytes(delta.HeapAlloc))
	fmt.Fprintf(out, "  Heap from OS  : %s\n", format.FormatBytes(delta.HeapSys))
	fmt.Fprintf(out, "  Total from OS : %s\n", format.FormatBytes(delta.Sys))
	fmt.Fprintf(out, "  Heap objects  : %s\n", format.FormatCount(int64(delta.HeapObjects)))
	fmt.Fprintf(out, "  GC cycles     : %d (pause total %dns)\n", delta.NumGC, delta.PauseTotalNs)
}

// PrintSystemReport displays the verbose system-wide usage section.
func PrintSystemReport(stats sysmon.Stats, out io.Writer) {
	fmt.Fprintf(out, "%sSystem usage:%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(out, "  CPU    : %.1f%%\n", stats.CPUPercent)
	fmt.Fprintf(out, "  Memory : %.1f%%\n", stats.MemPercent)
}

// DisplayQuietResult prints only the combined scalar, one line, no
// decoration. Scripts consume this form.
func DisplayQuietResult(combined int64, out io.Writer) {
	fmt.Fprintf(out, "%d\n", combined)
}
