package tui_test

import (
	"context"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"

	"github.com/MdAbusufiyan/lab-buddy/internal/adapters/tui"
	"github.com/MdAbusufiyan/lab-buddy/internal/core/domain"
	"github.com/MdAbusufiyan/lab-buddy/internal/core/ports/mocks"
	"github.com/MdAbusufiyan/lab-buddy/internal/engine/resolve"
)

type stubResolver struct {
	mu        sync.Mutex
	result    *resolve.Result
	err       error
	refreshed []string
}

func (s *stubResolver) Resolve(_ context.Context, _ string) (*resolve.Result, error) {
	return s.result, s.err
}

func (s *stubResolver) SilentRefresh(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.refreshed = append(s.refreshed, key)
	return nil
}

func (s *stubResolver) refreshCalls() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.refreshed...)
}

type stubSuggester struct {
	mu    sync.Mutex
	items []string
	calls []string
}

func (s *stubSuggester) Suggest(_ context.Context, prefix string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, prefix)
	return s.items, nil
}

func (s *stubSuggester) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}

type shellFixture struct {
	model      *tui.Model
	resolver   *stubResolver
	suggester  *stubSuggester
	supervisor *resolve.Supervisor
	reloads    *int
}

func setupShell(t *testing.T) *shellFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Warn(gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Error(gomock.Any()).AnyTimes()

	resolver := &stubResolver{}
	suggester := &stubSuggester{}
	supervisor := resolve.NewSupervisor()
	reloads := 0

	model := tui.NewModel(tui.Options{
		Resolver:   resolver,
		Suggester:  suggester,
		Supervisor: supervisor,
		Logger:     mockLogger,
		Reload: func() error {
			reloads++
			return nil
		},
	})

	return &shellFixture{
		model:      model,
		resolver:   resolver,
		suggester:  suggester,
		supervisor: supervisor,
		reloads:    &reloads,
	}
}

func typeRunes(m *tui.Model, s string) {
	for _, r := range s {
		_, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func awaitOutcome(t *testing.T, sup *resolve.Supervisor) resolve.Outcome {
	t.Helper()
	select {
	case out := <-sup.Outcomes():
		return out
	case <-time.After(2 * time.Second):
		t.Fatal("no outcome delivered")
		return resolve.Outcome{}
	}
}

func TestModel_TypingTriggersDebouncedSuggestions(t *testing.T) {
	f := setupShell(t)
	f.suggester.items = []string{"ethanol", "ethyl acetate"}

	typeRunes(f.model, "eth")

	cmd := tui.DeliverDebounce(f.model, f.model.CurrentSeq())
	require.NotNil(t, cmd)

	msg := cmd()
	_, _ = f.model.Update(msg)

	assert.Equal(t, []string{"ethanol", "ethyl acetate"}, f.model.Suggestions())
	assert.Equal(t, 1, f.suggester.callCount())
}

func TestModel_StaleDebounceDoesNotFetch(t *testing.T) {
	f := setupShell(t)

	typeRunes(f.model, "e")
	staleSeq := f.model.CurrentSeq()
	typeRunes(f.model, "t")

	cmd := tui.DeliverDebounce(f.model, staleSeq)
	assert.Nil(t, cmd)
	assert.Equal(t, 0, f.suggester.callCount())
}

func TestModel_StaleSuggestionsDiscarded(t *testing.T) {
	f := setupShell(t)

	typeRunes(f.model, "e")
	staleSeq := f.model.CurrentSeq()
	typeRunes(f.model, "t")

	tui.DeliverSuggestions(f.model, staleSeq, []string{"outdated"})
	assert.Empty(t, f.model.Suggestions())
}

func TestModel_TabCompletesSelectedSuggestion(t *testing.T) {
	f := setupShell(t)

	typeRunes(f.model, "eth")
	tui.DeliverSuggestions(f.model, f.model.CurrentSeq(), []string{"ethanol", "ethyl acetate"})

	_, _ = f.model.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, f.model.SelectedIdx())

	_, _ = f.model.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, "ethyl acetate", f.model.InputValue())
}

func TestModel_EnterResolvesAndRendersOutcome(t *testing.T) {
	f := setupShell(t)
	f.resolver.result = &resolve.Result{
		Record: &domain.ChemicalRecord{CID: 702, Name: "Ethanol"},
	}

	typeRunes(f.model, "ethanol")
	_, _ = f.model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, f.model.Resolving())

	out := awaitOutcome(t, f.supervisor)
	tui.DeliverOutcome(f.model, out)

	assert.False(t, f.model.Resolving())
	assert.False(t, f.model.StatusIsErr())
	assert.Contains(t, f.model.Status(), "Ethanol")
}

func TestModel_EnterOnEmptyInputIsNoop(t *testing.T) {
	f := setupShell(t)

	_, cmd := f.model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.False(t, f.model.Resolving())
}

func TestModel_FailedResolutionShowsError(t *testing.T) {
	f := setupShell(t)

	cmd := tui.DeliverOutcome(f.model, resolve.Outcome{Err: zerr.New("no internet and no local data")})
	require.NotNil(t, cmd)

	assert.True(t, f.model.StatusIsErr())
	assert.Contains(t, f.model.Status(), "no internet")
}

func TestModel_CachedOutcomeSchedulesSilentRefresh(t *testing.T) {
	f := setupShell(t)

	tui.DeliverOutcome(f.model, resolve.Outcome{Value: &resolve.Result{
		Record:    &domain.ChemicalRecord{CID: 702, Name: "Ethanol"},
		FromCache: true,
	}})

	// The refresh task runs on the supervisor and reports back with no value.
	out := awaitOutcome(t, f.supervisor)
	assert.Nil(t, out.Value)
	assert.NoError(t, out.Err)
	assert.Equal(t, []string{"ethanol"}, f.resolver.refreshCalls())

	tui.DeliverOutcome(f.model, out)
	assert.Contains(t, f.model.Status(), "refreshed")
}

func TestModel_CacheChangeReloadsStore(t *testing.T) {
	f := setupShell(t)

	tui.DeliverCacheChange(f.model)
	assert.Equal(t, 1, *f.reloads)
	assert.Contains(t, f.model.Status(), "reloaded")
}

func TestModel_EscQuits(t *testing.T) {
	f := setupShell(t)

	_, cmd := f.model.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
