package app_test

import (
	"context"
	"os"
	"testing"

	"github.com/grindlemire/graft"
	"github.com/stretchr/testify/require"

	"github.com/MdAbusufiyan/lab-buddy/internal/app"
	"github.com/MdAbusufiyan/lab-buddy/internal/core/domain"
	_ "github.com/MdAbusufiyan/lab-buddy/internal/wiring" // Register providers
)

func TestAppWiring(t *testing.T) {
	cwd, err := os.Getwd()
	require.NoError(t, err)

	defer func() {
		errChdir := os.Chdir(cwd)
		require.NoError(t, errChdir)
	}()

	// Point the config and cache at a temp dir so the graph builds hermetically.
	tmpDir := t.TempDir()
	err = os.Chdir(tmpDir)
	require.NoError(t, err)

	err = os.WriteFile(domain.ConfigFileName, []byte("cache_dir: \"./cache\"\n"), domain.FilePerm)
	require.NoError(t, err)

	// Verify that the application graph can be constructed
	components, _, err := graft.ExecuteFor[*app.Components](context.Background())
	require.NoError(t, err)
	require.NotNil(t, components)
	require.NotNil(t, components.App)
	require.NotNil(t, components.Logger)
	require.NotNil(t, components.Tracer)
	require.NotNil(t, components.Settings)
}
