package resolve

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/MdAbusufiyan/lab-buddy/internal/adapters/cache"     //nolint:depguard // Wired in engine wiring
	"github.com/MdAbusufiyan/lab-buddy/internal/adapters/config"    //nolint:depguard // Wired in engine wiring
	"github.com/MdAbusufiyan/lab-buddy/internal/adapters/logger"    //nolint:depguard // Wired in engine wiring
	"github.com/MdAbusufiyan/lab-buddy/internal/adapters/pubchem"   //nolint:depguard // Wired in engine wiring
	"github.com/MdAbusufiyan/lab-buddy/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"github.com/MdAbusufiyan/lab-buddy/internal/core/domain"
	"github.com/MdAbusufiyan/lab-buddy/internal/core/ports"
)

// NodeID is the unique identifier for the resolution engine Graft node.
const NodeID graft.ID = "engine.resolver"

// SupervisorNodeID is the unique identifier for the task supervisor Graft node.
const SupervisorNodeID graft.ID = "engine.supervisor"

func init() {
	graft.Register(graft.Node[*Engine]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			cache.NodeID,
			pubchem.FetcherNodeID,
			pubchem.ProbeNodeID,
			logger.NodeID,
			telemetry.NodeID,
			config.NodeID,
		},
		Run: func(ctx context.Context) (*Engine, error) {
			store, err := graft.Dep[ports.RecordStore](ctx)
			if err != nil {
				return nil, err
			}

			fetcher, err := graft.Dep[ports.RecordFetcher](ctx)
			if err != nil {
				return nil, err
			}

			probe, err := graft.Dep[ports.Probe](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}

			settings, err := graft.Dep[*domain.Settings](ctx)
			if err != nil {
				return nil, err
			}

			return NewEngine(
				store,
				fetcher,
				probe,
				log,
				tracer,
				settings.Cooldown,
			), nil
		},
	})

	graft.Register(graft.Node[*Supervisor]{
		ID:        SupervisorNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Supervisor, error) {
			return NewSupervisor(), nil
		},
	})
}
