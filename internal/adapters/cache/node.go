package cache

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/MdAbusufiyan/lab-buddy/internal/adapters/config"
	"github.com/MdAbusufiyan/lab-buddy/internal/adapters/logger"
	"github.com/MdAbusufiyan/lab-buddy/internal/core/domain"
	"github.com/MdAbusufiyan/lab-buddy/internal/core/ports"
)

// NodeID is the unique identifier for the record store Graft node.
const NodeID graft.ID = "adapter.record_store"

func init() {
	graft.Register(graft.Node[ports.RecordStore]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.RecordStore, error) {
			settings, err := graft.Dep[*domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return Open(settings.CacheDir, log), nil
		},
	})
}
