// Package config provides the configuration loader for labbuddy.
package config

import (
	"fmt"
	"path/filepath"
	"time"

	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"

	"github.com/MdAbusufiyan/lab-buddy/internal/core/domain"
	"github.com/MdAbusufiyan/lab-buddy/internal/core/ports"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	FS     FileSystem
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{FS: NewOSFS(), Logger: logger}
}

// NewLoaderWithFS creates a Loader backed by the given filesystem.
func NewLoaderWithFS(fsys FileSystem, logger ports.Logger) *Loader {
	return &Loader{FS: fsys, Logger: logger}
}

// Load discovers labbuddy.yaml upward from cwd and overlays it onto the
// built-in defaults. A missing file is not an error; the defaults apply.
func (l *Loader) Load(cwd string) (*domain.Settings, error) {
	settings := domain.DefaultSettings()

	configPath, found := l.findConfiguration(cwd)
	if !found {
		return settings, nil
	}

	raw, err := l.FS.ReadFile(configPath)
	if err != nil {
		err = zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
		return nil, zerr.With(err, "path", configPath)
	}

	var file File
	if parseErr := yaml.Unmarshal(raw, &file); parseErr != nil {
		parseErr = zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error())
		return nil, zerr.With(parseErr, "path", configPath)
	}

	if err := l.overlay(settings, &file, configPath); err != nil {
		return nil, err
	}

	return settings, nil
}

func (l *Loader) findConfiguration(cwd string) (string, bool) {
	currentDir := cwd

	for {
		configPath := filepath.Join(currentDir, domain.ConfigFileName)
		if _, err := l.FS.Stat(configPath); err == nil {
			return configPath, true
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			break
		}
		currentDir = parentDir
	}

	return "", false
}

func (l *Loader) overlay(settings *domain.Settings, file *File, configPath string) error {
	if file.CacheDir != "" {
		settings.CacheDir = resolveCacheDir(configPath, file.CacheDir)
	}
	if file.BaseURL != "" {
		settings.BaseURL = file.BaseURL
	}
	if file.ViewBaseURL != "" {
		settings.ViewBaseURL = file.ViewBaseURL
	}
	if file.AutocompleteBaseURL != "" {
		settings.AutocompleteBaseURL = file.AutocompleteBaseURL
	}
	if file.ProbeURL != "" {
		settings.ProbeURL = file.ProbeURL
	}

	for _, d := range []struct {
		field string
		raw   string
		dst   *time.Duration
	}{
		{"fetch_timeout", file.FetchTimeout, &settings.FetchTimeout},
		{"probe_timeout", file.ProbeTimeout, &settings.ProbeTimeout},
		{"cooldown", file.Cooldown, &settings.Cooldown},
	} {
		if d.raw == "" {
			continue
		}
		parsed, err := time.ParseDuration(d.raw)
		if err != nil {
			err = zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
			return zerr.With(err, "field", d.field)
		}
		*d.dst = parsed
	}

	if file.SuggestionLimit < 0 {
		l.Logger.Warn(fmt.Sprintf("'suggestion_limit' %d in %s ignored, must be positive", file.SuggestionLimit, domain.ConfigFileName))
	} else if file.SuggestionLimit > 0 {
		settings.SuggestionLimit = file.SuggestionLimit
	}

	return nil
}

// resolveCacheDir anchors a relative cache_dir at the config file's directory.
func resolveCacheDir(configPath, configuredDir string) string {
	if filepath.IsAbs(configuredDir) {
		return filepath.Clean(configuredDir)
	}
	return filepath.Clean(filepath.Join(filepath.Dir(configPath), configuredDir))
}
