package ports

import "context"

// CacheWatcher observes the persisted cache artifacts for external writes
// (for example another running instance) and reports coalesced change events.
//
//go:generate mockgen -source=watcher.go -destination=mocks/mock_watcher.go -package=mocks
type CacheWatcher interface {
	// Start begins watching the cache directory.
	Start(ctx context.Context) error

	// Events returns the channel of coalesced change notifications.
	Events() <-chan struct{}

	// Stop stops the watcher and releases its resources.
	Stop() error
}
