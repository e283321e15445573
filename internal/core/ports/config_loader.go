package ports

import "github.com/MdAbusufiyan/lab-buddy/internal/core/domain"

// ConfigLoader loads the application settings.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load discovers the configuration file upward from cwd and returns the
	// settings, falling back to defaults when no file exists.
	Load(cwd string) (*domain.Settings, error)
}
