package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MdAbusufiyan/lab-buddy/internal/core/ports"
	"github.com/MdAbusufiyan/lab-buddy/internal/engine/resolve"
)

// Options configure the interactive shell.
type Options struct {
	Resolver   Resolver
	Suggester  Suggester
	Supervisor *resolve.Supervisor
	Logger     ports.Logger

	// Events signals external cache changes; nil disables live reloads.
	Events <-chan struct{}
	// Reload re-reads the cache from disk after an external change.
	Reload func() error
}

// NewModel creates the shell model with an empty, focused input.
func NewModel(opts Options) *Model {
	input := textinput.New()
	input.Placeholder = "aspirin, 64-17-5, CCO ..."
	input.Prompt = ""
	input.Focus()

	reload := opts.Reload
	if reload == nil {
		reload = func() error { return nil }
	}

	return &Model{
		input:      input,
		resolver:   opts.Resolver,
		suggester:  opts.Suggester,
		supervisor: opts.Supervisor,
		log:        opts.Logger,
		events:     opts.Events,
		reload:     reload,
	}
}

// Run starts the shell and blocks until the user quits.
func Run(opts Options, teaOpts ...tea.ProgramOption) error {
	teaOpts = append([]tea.ProgramOption{tea.WithAltScreen()}, teaOpts...)
	program := tea.NewProgram(NewModel(opts), teaOpts...)
	_, err := program.Run()
	return err
}
