// Package tui provides the interactive search shell.
package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MdAbusufiyan/lab-buddy/internal/core/domain"
	"github.com/MdAbusufiyan/lab-buddy/internal/core/ports"
	"github.com/MdAbusufiyan/lab-buddy/internal/engine/resolve"
)

const debounceDelay = 300 * time.Millisecond

// Resolver resolves queries into records.
type Resolver interface {
	Resolve(ctx context.Context, raw string) (*resolve.Result, error)
	SilentRefresh(ctx context.Context, key string) error
}

// Suggester produces completion candidates for a prefix.
type Suggester interface {
	Suggest(ctx context.Context, prefix string) ([]string, error)
}

// Model represents the interactive shell state.
type Model struct {
	input      textinput.Model
	resolver   Resolver
	suggester  Suggester
	supervisor *resolve.Supervisor
	log        ports.Logger
	events     <-chan struct{}
	reload     func() error

	suggestions []string
	selectedIdx int
	result      *resolve.Result
	status      string
	statusIsErr bool
	resolving   bool
	seq         int
	width       int
	height      int
}

type (
	debounceElapsedMsg struct{ seq int }

	suggestionsMsg struct {
		seq   int
		items []string
	}

	outcomeMsg resolve.Outcome

	cacheChangedMsg struct{}
)

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.awaitOutcome(), m.awaitCacheChange())
}

// Update handles incoming messages and updates the model state.
//
//nolint:cyclop // message dispatch
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = msg.Width - inputChromeWidth
		return m, nil

	case debounceElapsedMsg:
		if msg.seq == m.seq && m.input.Value() != "" {
			return m, m.fetchSuggestions(msg.seq, m.input.Value())
		}
		return m, nil

	case suggestionsMsg:
		if msg.seq == m.seq {
			m.suggestions = msg.items
			m.selectedIdx = 0
		}
		return m, nil

	case outcomeMsg:
		return m, m.handleOutcome(resolve.Outcome(msg))

	case cacheChangedMsg:
		if err := m.reload(); err != nil {
			m.setError(err)
		} else {
			m.setStatus("cache reloaded after external change")
		}
		m.seq++
		cmds := []tea.Cmd{m.awaitCacheChange()}
		if m.input.Value() != "" {
			cmds = append(cmds, m.fetchSuggestions(m.seq, m.input.Value()))
		}
		return m, tea.Batch(cmds...)
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit

	case "up", "ctrl+k":
		if m.selectedIdx > 0 {
			m.selectedIdx--
		}
		return m, nil

	case "down", "ctrl+j":
		if m.selectedIdx < len(m.suggestions)-1 {
			m.selectedIdx++
		}
		return m, nil

	case "tab":
		if m.selectedIdx >= 0 && m.selectedIdx < len(m.suggestions) {
			m.input.SetValue(m.suggestions[m.selectedIdx])
			m.input.CursorEnd()
		}
		return m, nil

	case "enter":
		return m, m.submit()
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	if m.input.Value() != before {
		m.seq++
		if m.input.Value() == "" {
			m.suggestions = nil
			return m, cmd
		}
		return m, tea.Batch(cmd, m.debounce(m.seq))
	}
	return m, cmd
}

func (m *Model) submit() tea.Cmd {
	query := m.input.Value()
	if query == "" {
		return nil
	}

	pq := domain.NewPendingQuery(query)
	m.resolving = true
	m.suggestions = nil
	m.setStatus(fmt.Sprintf("resolving %q", pq.Key))

	m.supervisor.Supersede(context.Background(), pq.ID, func(ctx context.Context) (any, error) {
		return m.resolver.Resolve(ctx, query)
	})
	return nil
}

func (m *Model) handleOutcome(out resolve.Outcome) tea.Cmd {
	m.resolving = false

	switch {
	case out.Err != nil:
		m.setError(out.Err)
	case out.Value == nil:
		// A background refresh completed; the record pane is untouched.
		m.setStatus("cache entry refreshed")
	default:
		result, ok := out.Value.(*resolve.Result)
		if !ok {
			return m.awaitOutcome()
		}
		m.result = result
		if result.FromCache {
			m.setStatus("served from local cache")
			m.scheduleRefresh(result.Record.Key())
		} else {
			m.setStatus(fmt.Sprintf("resolved %s", result.Record.Name))
		}
	}

	return m.awaitOutcome()
}

// scheduleRefresh backfills a cached record in the background. A busy slot
// means a newer query is running; the refresh is skipped rather than queued.
func (m *Model) scheduleRefresh(key string) {
	pq := domain.NewPendingQuery("refresh " + key)
	_ = m.supervisor.Submit(context.Background(), pq.ID, func(ctx context.Context) (any, error) {
		return nil, m.resolver.SilentRefresh(ctx, key)
	})
}

func (m *Model) setStatus(status string) {
	m.status = status
	m.statusIsErr = false
	m.log.Info(status)
}

func (m *Model) setError(err error) {
	m.status = err.Error()
	m.statusIsErr = true
	m.log.Error(err)
}

func (m *Model) debounce(seq int) tea.Cmd {
	return tea.Tick(debounceDelay, func(time.Time) tea.Msg {
		return debounceElapsedMsg{seq: seq}
	})
}

func (m *Model) fetchSuggestions(seq int, prefix string) tea.Cmd {
	return func() tea.Msg {
		items, err := m.suggester.Suggest(context.Background(), prefix)
		if err != nil {
			items = nil
		}
		return suggestionsMsg{seq: seq, items: items}
	}
}

func (m *Model) awaitOutcome() tea.Cmd {
	return func() tea.Msg {
		out, ok := <-m.supervisor.Outcomes()
		if !ok {
			return nil
		}
		return outcomeMsg(out)
	}
}

func (m *Model) awaitCacheChange() tea.Cmd {
	return func() tea.Msg {
		if m.events == nil {
			return nil
		}
		if _, ok := <-m.events; !ok {
			return nil
		}
		return cacheChangedMsg{}
	}
}
