// Package style provides shared UI styling primitives: palette colors,
// icons, and lipgloss styles used by the record view and the interactive
// shell.
package style

import "github.com/charmbracelet/lipgloss"

// Palette.
var (
	Teal   = lipgloss.Color("#14B8A6")
	Slate  = lipgloss.Color("#667085")
	White  = lipgloss.Color("#FFFFFF")
	Ink    = lipgloss.Color("#0B0F19")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Flask   = "⚗"
	Hazard  = "⚠"
	Dot     = "●"
)

// Styles for the record view.
var (
	Title     = lipgloss.NewStyle().Bold(true).Foreground(Teal)
	FieldName = lipgloss.NewStyle().Bold(true).Foreground(Slate).Width(14)
	Muted     = lipgloss.NewStyle().Foreground(Slate)
	HazardTag = lipgloss.NewStyle().Bold(true).Foreground(Red)
	CacheTag  = lipgloss.NewStyle().Foreground(Green)
)
