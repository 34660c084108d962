package ui

import (
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines a color scheme for UI output.
// Each field contains an ANSI escape code for the corresponding color category.
type Theme struct {
	// Name is the identifier of the theme.
	Name string
	// Primary is the main accent color for important elements.
	Primary string
	// Secondary is used for less prominent elements.
	Secondary string
	// Success indicates positive outcomes or completed operations.
	Success string
	// Warning is used for caution messages or non-critical issues.
	Warning string
	// Error indicates failures or critical issues.
	Error string
	// Info is used for informational messages.
	Info string
	// Bold is the escape code for bold text.
	Bold string
	// Underline is the escape code for underlined text.
	Underline string
	// Reset clears all formatting.
	Reset string
}

var (
	// DarkTheme is optimized for dark terminal backgrounds.
	// Uses bright, vibrant colors for good contrast.
	DarkTheme = Theme{
		Name:      "dark",
		Primary:   "\033[38;5;39m",  // Bright blue
		Secondary: "\033[38;5;245m", // Grey
		Success:   "\033[38;5;82m",  // Bright green
		Warning:   "\033[38;5;220m", // Yellow
		Error:     "\033[38;5;196m", // Red
		Info:      "\033[38;5;141m", // Purple
		Bold:      "\033[1m",
		Underline: "\033[4m",
		Reset:     "\033[0m",
	}

	// NoColorTheme disables all color output.
	// Used when NO_COLOR is set or --no-color flag is provided.
	NoColorTheme = Theme{Name: "none"}

	// currentTheme is the active theme used throughout the application.
	currentTheme = DarkTheme
	themeMutex   sync.RWMutex
)

// InitTheme selects the active theme at startup. Color is disabled when
// the flag asks for it or the NO_COLOR convention is present in the
// environment.
func InitTheme(noColor bool) {
	if noColor || os.Getenv("NO_COLOR") != "" {
		SetTheme(NoColorTheme)
		return
	}
	SetTheme(DarkTheme)
}

// SetTheme replaces the active theme.
func SetTheme(t Theme) {
	themeMutex.Lock()
	defer themeMutex.Unlock()
	currentTheme = t
}

// ActiveTheme returns a copy of the active theme.
func ActiveTheme() Theme {
	themeMutex.RLock()
	defer themeMutex.RUnlock()
	return currentTheme
}

// Color accessors return the escape code of the active theme's category.
// Call sites compose them inline with fmt verbs, matching the CLI output
// style.

// ColorPrimary returns the primary accent escape code.
func ColorPrimary() string { return ActiveTheme().Primary }

// ColorSecondary returns the secondary escape code.
func ColorSecondary() string { return ActiveTheme().Secondary }

// ColorSuccess returns the success escape code.
func ColorSuccess() string { return ActiveTheme().Success }

// ColorWarning returns the warning escape code.
func ColorWarning() string { return ActiveTheme().Warning }

// ColorError returns the error escape code.
func ColorError() string { return ActiveTheme().Error }

// ColorInfo returns the info escape code.
func ColorInfo() string { return ActiveTheme().Info }

// ColorBold returns the bold escape code.
func ColorBold() string { return ActiveTheme().Bold }

// ColorUnderline returns the underline escape code.
func ColorUnderline() string { return ActiveTheme().Underline }

// ColorReset returns the reset escape code.
func ColorReset() string { return ActiveTheme().Reset }

// TUITheme defines lipgloss-compatible colors for the TUI dashboard.
// Each field is a lipgloss.TerminalColor suitable for use with
// lipgloss.Style.Foreground() and Background().
type TUITheme struct {
	Text    lipgloss.TerminalColor
	Border  lipgloss.TerminalColor
	Accent  lipgloss.TerminalColor
	Success lipgloss.TerminalColor
	Warning lipgloss.TerminalColor
	Error   lipgloss.TerminalColor
	Dim     lipgloss.TerminalColor
}

// DarkTUITheme is the default dashboard palette.
var DarkTUITheme = TUITheme{
	Text:    lipgloss.Color("#d0d0d0"),
	Border:  lipgloss.Color("#444444"),
	Accent:  lipgloss.Color("#00afff"),
	Success: lipgloss.Color("#5fff00"),
	Warning: lipgloss.Color("#ffd700"),
	Error:   lipgloss.Color("#ff0000"),
	Dim:     lipgloss.Color("#8a8a8a"),
}
