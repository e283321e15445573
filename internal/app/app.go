// Package app implements the application layer for labbuddy.
package app

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/zerr"

	"github.com/MdAbusufiyan/lab-buddy/internal/adapters/tui"
	"github.com/MdAbusufiyan/lab-buddy/internal/core/domain"
	"github.com/MdAbusufiyan/lab-buddy/internal/core/ports"
	"github.com/MdAbusufiyan/lab-buddy/internal/engine/resolve"
	"github.com/MdAbusufiyan/lab-buddy/internal/engine/suggest"
)

// CacheMaintenance is the slice of the cache store the maintenance
// commands need beyond ports.RecordStore.
type CacheMaintenance interface {
	Verify() error
	Clear() error
	Dir() string
	Reload() error
}

// App represents the main application logic.
type App struct {
	engine     *resolve.Engine
	suggester  *suggest.Provider
	supervisor *resolve.Supervisor
	store      ports.RecordStore
	maint      CacheMaintenance
	watcher    ports.CacheWatcher
	logger     ports.Logger
	settings   *domain.Settings
	teaOptions []tea.ProgramOption
}

// New creates a new App instance.
func New(
	engine *resolve.Engine,
	suggester *suggest.Provider,
	supervisor *resolve.Supervisor,
	store ports.RecordStore,
	maint CacheMaintenance,
	cacheWatcher ports.CacheWatcher,
	log ports.Logger,
	settings *domain.Settings,
) *App {
	return &App{
		engine:     engine,
		suggester:  suggester,
		supervisor: supervisor,
		store:      store,
		maint:      maint,
		watcher:    cacheWatcher,
		logger:     log,
		settings:   settings,
	}
}

// WithTeaOptions adds bubbletea program options to the App.
// This is primarily used for testing to disable input/output.
func (a *App) WithTeaOptions(opts ...tea.ProgramOption) *App {
	a.teaOptions = append(a.teaOptions, opts...)
	return a
}

// SearchOptions configuration for the Search method.
type SearchOptions struct {
	// Refresh backfills missing fields of the cached entry after resolving.
	Refresh bool
}

// Search resolves a single query and returns the result.
func (a *App) Search(ctx context.Context, query string, opts SearchOptions) (*resolve.Result, error) {
	result, err := a.engine.Resolve(ctx, query)
	if err != nil {
		return nil, err
	}

	if opts.Refresh {
		if refreshErr := a.engine.SilentRefresh(ctx, result.Record.Key()); refreshErr != nil {
			a.logger.Warn(fmt.Sprintf("refresh of %q failed: %s", result.Record.Key(), refreshErr))
		}
	}

	return result, nil
}

// Suggest returns completion candidates for a prefix.
func (a *App) Suggest(ctx context.Context, prefix string) ([]string, error) {
	return a.suggester.Suggest(ctx, prefix)
}

// Interactive runs the search shell until the user quits. Cache changes made
// by other processes are picked up live when the watcher can start.
func (a *App) Interactive(ctx context.Context) error {
	var events <-chan struct{}
	if a.watcher != nil {
		if err := a.watcher.Start(ctx); err != nil {
			a.logger.Warn(fmt.Sprintf("cache watcher unavailable, live reload disabled: %s", err))
		} else {
			events = a.watcher.Events()
			defer func() {
				_ = a.watcher.Stop()
			}()
		}
	}

	return tui.Run(tui.Options{
		Resolver:   a.engine,
		Suggester:  a.suggester,
		Supervisor: a.supervisor,
		Logger:     a.logger,
		Events:     events,
		Reload:     a.maint.Reload,
	}, a.teaOptions...)
}

// CacheVerify checks the signature of the on-disk cache.
func (a *App) CacheVerify() error {
	if err := a.maint.Verify(); err != nil {
		return zerr.Wrap(err, "cache verification failed")
	}
	return nil
}

// CachePath returns the cache directory.
func (a *App) CachePath() string {
	return a.maint.Dir()
}

// CacheClear removes all cached records.
func (a *App) CacheClear() error {
	if err := a.maint.Clear(); err != nil {
		return zerr.Wrap(err, "failed to clear cache")
	}
	a.logger.Info("cache cleared")
	return nil
}

// CacheKeys lists the primary keys of all cached records.
func (a *App) CacheKeys() []string {
	return a.store.Keys()
}
