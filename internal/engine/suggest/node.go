package suggest

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/MdAbusufiyan/lab-buddy/internal/adapters/cache"   //nolint:depguard // Wired in engine wiring
	"github.com/MdAbusufiyan/lab-buddy/internal/adapters/config"  //nolint:depguard // Wired in engine wiring
	"github.com/MdAbusufiyan/lab-buddy/internal/adapters/pubchem" //nolint:depguard // Wired in engine wiring
	"github.com/MdAbusufiyan/lab-buddy/internal/core/domain"
	"github.com/MdAbusufiyan/lab-buddy/internal/core/ports"
)

// NodeID is the unique identifier for the suggestion provider Graft node.
const NodeID graft.ID = "engine.suggester"

func init() {
	graft.Register(graft.Node[*Provider]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			cache.NodeID,
			pubchem.FetcherNodeID,
			config.NodeID,
		},
		Run: func(ctx context.Context) (*Provider, error) {
			store, err := graft.Dep[ports.RecordStore](ctx)
			if err != nil {
				return nil, err
			}

			fetcher, err := graft.Dep[ports.RecordFetcher](ctx)
			if err != nil {
				return nil, err
			}

			settings, err := graft.Dep[*domain.Settings](ctx)
			if err != nil {
				return nil, err
			}

			return NewProvider(store, fetcher, settings.SuggestionLimit), nil
		},
	})
}
