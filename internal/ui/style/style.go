// Package style provides the palette and status marks used by log output.
package style

import (
	"log/slog"

	"github.com/charmbracelet/lipgloss"
)

// Palette.
var (
	Slate  = lipgloss.Color("#667085")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Marks prefixed to log lines.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
)

// Mark pairs a line prefix with its color.
type Mark struct {
	Icon  string
	Color lipgloss.Color
}

// ForLevel returns the mark for a log level. Info and below carry no icon.
func ForLevel(level slog.Level) Mark {
	switch {
	case level >= slog.LevelError:
		return Mark{Icon: Cross, Color: Red}
	case level >= slog.LevelWarn:
		return Mark{Icon: Warning, Color: Yellow}
	default:
		return Mark{Color: Slate}
	}
}

// Prefix returns msg with the icon prepended, if any.
func (m Mark) Prefix(msg string) string {
	if m.Icon == "" {
		return msg
	}
	return m.Icon + " " + msg
}
