package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/MdAbusufiyan/lab-buddy/internal/ui/style"
)

var (
	promptStyle = lipgloss.NewStyle().
			Foreground(style.Teal).
			Bold(true)

	suggestionStyle = lipgloss.NewStyle().
			Foreground(style.Slate)

	selectedStyle = lipgloss.NewStyle().
			Foreground(style.Teal).
			Bold(true)

	statusStyle = lipgloss.NewStyle().
			Foreground(style.Slate)

	errorStyle = lipgloss.NewStyle().
			Foreground(style.Red).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(style.Slate).
			Faint(true)
)
