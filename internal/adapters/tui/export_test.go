package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MdAbusufiyan/lab-buddy/internal/engine/resolve"
)

// Export accessors and message injectors for testing.

// InputValue exposes the current input text.
func (m *Model) InputValue() string {
	return m.input.Value()
}

// Suggestions exposes the current suggestion list.
func (m *Model) Suggestions() []string {
	return m.suggestions
}

// SelectedIdx exposes the suggestion cursor.
func (m *Model) SelectedIdx() int {
	return m.selectedIdx
}

// Status exposes the status line text.
func (m *Model) Status() string {
	return m.status
}

// StatusIsErr reports whether the status line shows an error.
func (m *Model) StatusIsErr() bool {
	return m.statusIsErr
}

// Resolving reports whether a resolution is in flight.
func (m *Model) Resolving() bool {
	return m.resolving
}

// DeliverDebounce injects an elapsed debounce timer.
func DeliverDebounce(m *Model, seq int) tea.Cmd {
	_, cmd := m.Update(debounceElapsedMsg{seq: seq})
	return cmd
}

// DeliverSuggestions injects a suggestion fetch result.
func DeliverSuggestions(m *Model, seq int, items []string) {
	_, _ = m.Update(suggestionsMsg{seq: seq, items: items})
}

// DeliverOutcome injects a completed supervisor task.
func DeliverOutcome(m *Model, out resolve.Outcome) tea.Cmd {
	_, cmd := m.Update(outcomeMsg(out))
	return cmd
}

// DeliverCacheChange injects an external cache change signal.
func DeliverCacheChange(m *Model) tea.Cmd {
	_, cmd := m.Update(cacheChangedMsg{})
	return cmd
}

// CurrentSeq exposes the debounce sequence counter.
func (m *Model) CurrentSeq() int {
	return m.seq
}
