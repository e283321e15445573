// Package suggest serves incremental-search completions, preferring cached
// names over the remote autocomplete endpoint.
package suggest

import (
	"context"
	"strings"

	"github.com/MdAbusufiyan/lab-buddy/internal/core/domain"
	"github.com/MdAbusufiyan/lab-buddy/internal/core/ports"
)

const (
	// minRemotePrefix is the shortest prefix worth a remote autocomplete call.
	minRemotePrefix = 2
	// remoteCap bounds remote suggestions regardless of what upstream returns.
	remoteCap = 10
)

// Provider implements incremental search: a prefix scan over the cache's
// sorted keys first, the remote autocomplete endpoint as a fallback. The
// caller debounces keystrokes; the provider itself is stateless.
type Provider struct {
	store   ports.RecordStore
	fetcher ports.RecordFetcher
	limit   int
}

// NewProvider creates a suggestion provider. limit caps cache-served
// suggestions per call.
func NewProvider(store ports.RecordStore, fetcher ports.RecordFetcher, limit int) *Provider {
	return &Provider{
		store:   store,
		fetcher: fetcher,
		limit:   limit,
	}
}

// Suggest returns completions for prefix. Cached names whose normalized form
// starts with the normalized prefix win; only when the cache has none and the
// prefix is at least two characters does the remote endpoint get asked.
func (p *Provider) Suggest(ctx context.Context, prefix string) ([]string, error) {
	key := domain.NormalizeKey(prefix)
	if key == "" {
		return nil, nil
	}

	var matches []string
	for _, candidate := range p.store.Keys() {
		if !strings.HasPrefix(candidate, key) {
			continue
		}
		matches = append(matches, p.displayName(candidate))
		if len(matches) >= p.limit {
			break
		}
	}
	if len(matches) > 0 {
		return matches, nil
	}

	if len(key) < minRemotePrefix {
		return nil, nil
	}

	remote, err := p.fetcher.Autocomplete(ctx, prefix)
	if err != nil {
		return nil, err
	}
	if len(remote) > remoteCap {
		remote = remote[:remoteCap]
	}
	return remote, nil
}

// displayName returns the cached record's stored name, which keeps the
// casing the compound was saved with. The key is normalized and only
// serves as a fallback.
func (p *Provider) displayName(key string) string {
	rec, ok := p.store.Get(key)
	if !ok || rec.Name == "" {
		return key
	}
	return rec.Name
}
