package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/zerr"

	"github.com/MdAbusufiyan/lab-buddy/internal/adapters/cache"    //nolint:depguard // Wired in app layer
	"github.com/MdAbusufiyan/lab-buddy/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"github.com/MdAbusufiyan/lab-buddy/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"github.com/MdAbusufiyan/lab-buddy/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"github.com/MdAbusufiyan/lab-buddy/internal/adapters/watcher"   //nolint:depguard // Wired in app layer
	"github.com/MdAbusufiyan/lab-buddy/internal/core/domain"
	"github.com/MdAbusufiyan/lab-buddy/internal/core/ports"
	"github.com/MdAbusufiyan/lab-buddy/internal/engine/resolve"
	"github.com/MdAbusufiyan/lab-buddy/internal/engine/suggest"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			resolve.NodeID,
			resolve.SupervisorNodeID,
			suggest.NodeID,
			cache.NodeID,
			watcher.NodeID,
			logger.NodeID,
			config.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			telemetry.NodeID,
			config.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	engine, err := graft.Dep[*resolve.Engine](ctx)
	if err != nil {
		return nil, err
	}

	supervisor, err := graft.Dep[*resolve.Supervisor](ctx)
	if err != nil {
		return nil, err
	}

	suggester, err := graft.Dep[*suggest.Provider](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.RecordStore](ctx)
	if err != nil {
		return nil, err
	}

	cacheWatcher, err := graft.Dep[ports.CacheWatcher](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	settings, err := graft.Dep[*domain.Settings](ctx)
	if err != nil {
		return nil, err
	}

	maint, ok := store.(CacheMaintenance)
	if !ok {
		return nil, zerr.New("record store does not support cache maintenance")
	}

	return New(engine, suggester, supervisor, store, maint, cacheWatcher, log, settings), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	application, err := graft.Dep[*App](ctx)
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

	return &Components{
		App:      application,
		Logger:   log,
		Tracer:   tracer,
		Settings: settings,
	}, nil
}
