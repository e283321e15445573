package watcher

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/MdAbusufiyan/lab-buddy/internal/adapters/config"
	"github.com/MdAbusufiyan/lab-buddy/internal/core/domain"
	"github.com/MdAbusufiyan/lab-buddy/internal/core/ports"
)

// NodeID is the unique identifier for the cache watcher Graft node.
const NodeID graft.ID = "adapter.cache_watcher"

func init() {
	graft.Register(graft.Node[ports.CacheWatcher]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (ports.CacheWatcher, error) {
			settings, err := graft.Dep[*domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return NewCacheWatcher(settings.CacheDir)
		},
	})
}
