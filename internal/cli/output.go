package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/agbru/reducebench/internal/config"
	"github.com/agbru/reducebench/internal/format"
	"github.com/agbru/reducebench/internal/orchestration"
)

// reportFilePerm is the mode for written report files.
const reportFilePerm = 0o644

// WriteReportToFile writes a plain-text run report to cfg.OutputFile.
// The report records the run parameters and every strategy's outcome, so a
// saved file is self-describing without the invocation that produced it.
func WriteReportToFile(results []orchestration.RunResult, cfg config.AppConfig, timestamp time.Time) error {
	var b strings.Builder

	fmt.Fprintf(&b, "# reducebench report\n")
	fmt.Fprintf(&b, "# generated: %s\n", timestamp.Format(time.RFC3339))
	fmt.Fprintf(&b, "# size=%d workers=%d range=[%d,%d] trials=%d algo=%s\n\n",
		cfg.Size, cfg.Workers, cfg.MinValue, cfg.MaxValue, cfg.Trials, cfg.Algo)

	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(&b, "%s: FAILED (%v)\n", r.Name, r.Err)
			continue
		}
		fmt.Fprintf(&b, "%s: combined=%d sum_even=%d max_even=%d duration=%s\n",
			r.Name, r.Combined, r.SumEven, r.MaxEven, format.FormatSeconds(r.Duration))
	}

	dir := filepath.Dir(cfg.OutputFile)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating report directory: %w", err)
		}
	}
	if err := os.WriteFile(cfg.OutputFile, []byte(b.String()), reportFilePerm); err != nil {
		return fmt.Errorf("writing report file: %w", err)
	}
	return nil
}
