// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/MdAbusufiyan/lab-buddy/internal/adapters/cache"
	_ "github.com/MdAbusufiyan/lab-buddy/internal/adapters/config"
	_ "github.com/MdAbusufiyan/lab-buddy/internal/adapters/logger"
	_ "github.com/MdAbusufiyan/lab-buddy/internal/adapters/pubchem"
	_ "github.com/MdAbusufiyan/lab-buddy/internal/adapters/telemetry"
	_ "github.com/MdAbusufiyan/lab-buddy/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "github.com/MdAbusufiyan/lab-buddy/internal/app"
	_ "github.com/MdAbusufiyan/lab-buddy/internal/engine/resolve"
	_ "github.com/MdAbusufiyan/lab-buddy/internal/engine/suggest"
)
