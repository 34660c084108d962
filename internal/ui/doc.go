// Package ui centralizes terminal color themes for the CLI and TUI
// output layers. The active theme is process-global and chosen once at
// startup from the --no-color flag and the NO_COLOR environment variable.
package ui
