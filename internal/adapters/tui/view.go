package tui

import (
	"strings"

	"github.com/MdAbusufiyan/lab-buddy/internal/ui/output"
	"github.com/MdAbusufiyan/lab-buddy/internal/ui/style"
)

const inputChromeWidth = 4

// View renders the UI.
func (m *Model) View() string {
	var s strings.Builder

	s.WriteString(style.Title.Render(style.Flask+" lab buddy") + "\n\n")
	s.WriteString(promptStyle.Render("> ") + m.input.View() + "\n")

	if len(m.suggestions) > 0 {
		s.WriteString("\n" + m.suggestionList())
	}

	if m.result != nil {
		s.WriteString("\n" + output.RenderRecord(m.result.Record, m.result.FromCache))
	}

	s.WriteString("\n" + m.statusLine() + "\n")
	s.WriteString(helpStyle.Render("enter resolve · tab complete · ↑/↓ select · esc quit") + "\n")

	return s.String()
}

func (m *Model) suggestionList() string {
	var s strings.Builder
	for i, item := range m.suggestions {
		if i == m.selectedIdx {
			s.WriteString(selectedStyle.Render("> "+item) + "\n")
		} else {
			s.WriteString("  " + suggestionStyle.Render(item) + "\n")
		}
	}
	return s.String()
}

func (m *Model) statusLine() string {
	switch {
	case m.resolving:
		return statusStyle.Render(style.Dot + " " + m.status)
	case m.statusIsErr:
		return errorStyle.Render(style.Cross + " " + m.status)
	case m.status != "":
		return statusStyle.Render(style.Check + " " + m.status)
	default:
		return statusStyle.Render("type a chemical name, CAS number, or SMILES")
	}
}
