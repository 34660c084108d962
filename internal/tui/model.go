// Package tui implements the live dashboard (--tui): one progress bar per
// strategy, the equivalence verdict and the final comparison figures.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	teaprogress "github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/agbru/reducebench/internal/config"
	apperrors "github.com/agbru/reducebench/internal/errors"
	"github.com/agbru/reducebench/internal/format"
	"github.com/agbru/reducebench/internal/orchestration"
	"github.com/agbru/reducebench/internal/reduce"
)

// defaultBarWidth is used before the first WindowSizeMsg arrives.
const defaultBarWidth = 40

// KeyMap defines the dashboard key bindings.
type KeyMap struct {
	Quit key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// progressMsg carries one strategy's progress fraction into the model.
type progressMsg struct {
	index int
	value float64
}

// doneMsg carries the completed run set and its verdict.
type doneMsg struct {
	results  []orchestration.RunResult
	exitCode int
}

// strategyRow tracks one strategy's display state.
type strategyRow struct {
	name     string
	fraction float64
	result   *orchestration.RunResult
}

// Model is the root bubbletea model for the dashboard.
type Model struct {
	ctx     context.Context
	cfg     config.AppConfig
	version string
	keymap  KeyMap

	spin spinner.Model
	bar  teaprogress.Model
	rows []strategyRow

	start    time.Time
	width    int
	done     bool
	exitCode int
}

// NewModel creates a dashboard model for the given strategies.
func NewModel(ctx context.Context, strategies []reduce.Strategy, cfg config.AppConfig, version string) Model {
	rows := make([]strategyRow, len(strategies))
	for i, s := range strategies {
		rows[i] = strategyRow{name: s.Name()}
	}

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = titleStyle

	bar := teaprogress.New(teaprogress.WithDefaultGradient())
	bar.Width = defaultBarWidth

	return Model{
		ctx:      ctx,
		cfg:      cfg,
		version:  version,
		keymap:   DefaultKeyMap(),
		spin:     spin,
		bar:      bar,
		rows:     rows,
		start:    time.Now(),
		exitCode: apperrors.ExitSuccess,
	}
}

// Init starts the spinner tick loop.
func (m Model) Init() tea.Cmd {
	return m.spin.Tick
}

// Update handles incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keymap.Quit) {
			if !m.done {
				m.exitCode = apperrors.ExitErrorCanceled
			}
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		if w := msg.Width - 30; w > 10 {
			m.bar.Width = w
		}

	case progressMsg:
		if msg.index >= 0 && msg.index < len(m.rows) {
			m.rows[msg.index].fraction = msg.value
		}

	case doneMsg:
		m.done = true
		m.exitCode = msg.exitCode
		for i := range msg.results {
			if i < len(m.rows) {
				m.rows[i].result = &msg.results[i]
				m.rows[i].fraction = 1.0
			}
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View renders the dashboard.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("reducebench"))
	b.WriteString(" ")
	b.WriteString(versionStyle.Render(m.version))
	b.WriteString("  ")
	b.WriteString(dimStyle.Render(fmt.Sprintf("n=%s workers=%d",
		format.FormatCount(int64(m.cfg.Size)), m.cfg.Workers)))
	b.WriteString("\n\n")

	for _, row := range m.rows {
		b.WriteString(rowNameStyle.Render(row.name))
		b.WriteString(" ")
		b.WriteString(m.bar.ViewAs(row.fraction))
		b.WriteString(" ")
		b.WriteString(m.rowStatus(row))
		b.WriteString("\n")
	}

	if m.done {
		b.WriteString("\n")
		b.WriteString(m.verdictLine())
	}

	footer := fmt.Sprintf("%s elapsed  q quit", m.elapsed())
	if !m.done {
		footer = m.spin.View() + "running  " + footer
	}
	b.WriteString(footerStyle.Render(footer))

	return panelStyle.Render(b.String())
}

// rowStatus renders the right-hand column of a strategy row.
func (m Model) rowStatus(row strategyRow) string {
	if row.result == nil {
		return dimStyle.Render(fmt.Sprintf("%3.0f%%", row.fraction*100))
	}
	if row.result.Err != nil {
		return errorStyle.Render("failed")
	}
	return resultStyle.Render(format.FormatExecutionDuration(row.result.Duration))
}

// verdictLine renders the final equivalence verdict with the combined
// result of the reference run.
func (m Model) verdictLine() string {
	ok := m.exitCode == apperrors.ExitSuccess
	if !ok {
		return verdictStyles[false].Render("Strategies disagree or failed.") + "\n"
	}

	for _, row := range m.rows {
		if row.result != nil && row.result.Err == nil {
			return verdictStyles[true].Render(fmt.Sprintf(
				"All strategies agree: 2*max - sum = %d (max=%d, sum=%d)",
				row.result.Combined, row.result.MaxEven, row.result.SumEven)) + "\n"
		}
	}
	return verdictStyles[true].Render("Done.") + "\n"
}

// elapsed reports the wall-clock time since the dashboard started.
func (m Model) elapsed() time.Duration {
	return time.Since(m.start).Round(100 * time.Millisecond)
}
