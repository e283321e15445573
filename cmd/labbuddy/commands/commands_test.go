package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MdAbusufiyan/lab-buddy/cmd/labbuddy/commands"
	"github.com/MdAbusufiyan/lab-buddy/internal/app"
	"github.com/MdAbusufiyan/lab-buddy/internal/build"
	"github.com/MdAbusufiyan/lab-buddy/internal/core/domain"
	"github.com/MdAbusufiyan/lab-buddy/internal/engine/resolve"
)

type mockApp struct {
	searchFunc      func(ctx context.Context, query string, opts app.SearchOptions) (*resolve.Result, error)
	suggestFunc     func(ctx context.Context, prefix string) ([]string, error)
	interactiveFunc func(ctx context.Context) error
	verifyErr       error
	clearErr        error
	path            string
	keys            []string
}

func (m *mockApp) Search(ctx context.Context, query string, opts app.SearchOptions) (*resolve.Result, error) {
	if m.searchFunc != nil {
		return m.searchFunc(ctx, query, opts)
	}
	return &resolve.Result{Record: &domain.ChemicalRecord{Name: query}}, nil
}

func (m *mockApp) Suggest(ctx context.Context, prefix string) ([]string, error) {
	if m.suggestFunc != nil {
		return m.suggestFunc(ctx, prefix)
	}
	return nil, nil
}

func (m *mockApp) Interactive(ctx context.Context) error {
	if m.interactiveFunc != nil {
		return m.interactiveFunc(ctx)
	}
	return nil
}

func (m *mockApp) CacheVerify() error { return m.verifyErr }

func (m *mockApp) CachePath() string { return m.path }

func (m *mockApp) CacheClear() error { return m.clearErr }

func (m *mockApp) CacheKeys() []string { return m.keys }

func newCLI(mock *mockApp) (*commands.CLI, *bytes.Buffer) {
	cli := commands.New(mock)
	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	return cli, buf
}

func TestCommands_Search(t *testing.T) {
	t.Run("wires flags and joins multi-word queries", func(t *testing.T) {
		var capturedQuery string
		var capturedOpts app.SearchOptions

		mock := &mockApp{
			searchFunc: func(_ context.Context, query string, opts app.SearchOptions) (*resolve.Result, error) {
				capturedQuery = query
				capturedOpts = opts
				return &resolve.Result{Record: &domain.ChemicalRecord{CID: 702, Name: "Ethanol"}}, nil
			},
		}

		cli, buf := newCLI(mock)
		cli.SetArgs([]string{"search", "ethyl", "alcohol", "--refresh"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, "ethyl alcohol", capturedQuery)
		assert.True(t, capturedOpts.Refresh)
		assert.Contains(t, buf.String(), "Ethanol")
	})

	t.Run("json output prints the raw record", func(t *testing.T) {
		mock := &mockApp{
			searchFunc: func(_ context.Context, _ string, _ app.SearchOptions) (*resolve.Result, error) {
				return &resolve.Result{Record: &domain.ChemicalRecord{CID: 702, Name: "Ethanol", CAS: "64-17-5"}}, nil
			},
		}

		cli, buf := newCLI(mock)
		cli.SetArgs([]string{"search", "ethanol", "--json"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Contains(t, buf.String(), `"cid": 702`)
		assert.Contains(t, buf.String(), `"cas": "64-17-5"`)
	})

	t.Run("returns resolution errors", func(t *testing.T) {
		mock := &mockApp{
			searchFunc: func(_ context.Context, _ string, _ app.SearchOptions) (*resolve.Result, error) {
				return nil, errors.New("simulated error")
			},
		}

		cli, _ := newCLI(mock)
		cli.SetArgs([]string{"search", "ethanol"})

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})
}

func TestCommands_Suggest(t *testing.T) {
	mock := &mockApp{
		suggestFunc: func(_ context.Context, prefix string) ([]string, error) {
			assert.Equal(t, "eth", prefix)
			return []string{"ethanol", "ethyl acetate"}, nil
		},
	}

	cli, buf := newCLI(mock)
	cli.SetArgs([]string{"suggest", "eth"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, buf.String(), "ethanol")
	assert.Contains(t, buf.String(), "ethyl acetate")
}

func TestCommands_Cache(t *testing.T) {
	t.Run("verify reports a valid signature", func(t *testing.T) {
		cli, buf := newCLI(&mockApp{})
		cli.SetArgs([]string{"cache", "verify"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Contains(t, buf.String(), "valid")
	})

	t.Run("verify surfaces integrity failures", func(t *testing.T) {
		cli, _ := newCLI(&mockApp{verifyErr: domain.ErrCacheIntegrity})
		cli.SetArgs([]string{"cache", "verify"})

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrCacheIntegrity)
	})

	t.Run("path prints the cache directory", func(t *testing.T) {
		cli, buf := newCLI(&mockApp{path: "/tmp/labbuddy-cache"})
		cli.SetArgs([]string{"cache", "path"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Contains(t, buf.String(), "/tmp/labbuddy-cache")
	})

	t.Run("list prints keys or an empty notice", func(t *testing.T) {
		cli, buf := newCLI(&mockApp{keys: []string{"ethanol", "water"}})
		cli.SetArgs([]string{"cache", "list"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Contains(t, buf.String(), "ethanol")
		assert.Contains(t, buf.String(), "water")

		cli, buf = newCLI(&mockApp{})
		cli.SetArgs([]string{"cache", "list"})
		require.NoError(t, cli.Execute(context.Background()))
		assert.Contains(t, buf.String(), "cache is empty")
	})
}

func TestCommands_RootRunsInteractive(t *testing.T) {
	called := false
	mock := &mockApp{
		interactiveFunc: func(_ context.Context) error {
			called = true
			return nil
		},
	}

	cli, _ := newCLI(mock)
	cli.SetArgs([]string{})

	require.NoError(t, cli.Execute(context.Background()))
	assert.True(t, called)
}

func TestCommands_Version(t *testing.T) {
	cli, buf := newCLI(&mockApp{})
	cli.SetArgs([]string{"version"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, buf.String(), build.Version)
}
