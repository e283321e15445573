package pubchem

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/MdAbusufiyan/lab-buddy/internal/adapters/config"
	"github.com/MdAbusufiyan/lab-buddy/internal/core/domain"
	"github.com/MdAbusufiyan/lab-buddy/internal/core/ports"
)

const (
	// FetcherNodeID is the unique identifier for the record fetcher Graft node.
	FetcherNodeID graft.ID = "adapter.record_fetcher"
	// ProbeNodeID is the unique identifier for the reachability probe Graft node.
	ProbeNodeID graft.ID = "adapter.probe"
)

func init() {
	graft.Register(graft.Node[ports.RecordFetcher]{
		ID:        FetcherNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (ports.RecordFetcher, error) {
			settings, err := graft.Dep[*domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return NewClient(settings), nil
		},
	})

	graft.Register(graft.Node[ports.Probe]{
		ID:        ProbeNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (ports.Probe, error) {
			settings, err := graft.Dep[*domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return NewProbe(settings), nil
		},
	})
}
