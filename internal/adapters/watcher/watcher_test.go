package watcher_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/MdAbusufiyan/lab-buddy/internal/adapters/watcher"
	"github.com/MdAbusufiyan/lab-buddy/internal/core/domain"
)

func TestCacheWatcher_SignalsOnCacheWrite(t *testing.T) {
	dir := t.TempDir()

	w, err := watcher.NewCacheWatcher(dir)
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Stop() })

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	require.NoError(t, w.Start(ctx))

	require.NoError(t, os.WriteFile(domain.CacheDataPath(dir), []byte("{}"), domain.FilePerm))
	require.NoError(t, os.WriteFile(domain.CacheSigPath(dir), []byte("sig"), domain.FilePerm))

	select {
	case <-w.Events():
	case <-time.After(2 * time.Second):
		t.Fatal("expected a cache change signal")
	}
}

func TestCacheWatcher_IgnoresUnrelatedFiles(t *testing.T) {
	dir := t.TempDir()

	w, err := watcher.NewCacheWatcher(dir)
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Stop() })

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	require.NoError(t, w.Start(ctx))

	require.NoError(t, os.WriteFile(dir+"/notes.txt", []byte("x"), domain.FilePerm))

	select {
	case <-w.Events():
		t.Fatal("unrelated file must not signal")
	case <-time.After(300 * time.Millisecond):
	}
}

func TestCacheWatcher_StopInsideDebounceWindow(t *testing.T) {
	dir := t.TempDir()

	w, err := watcher.NewCacheWatcher(dir)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	require.NoError(t, w.Start(ctx))

	// Arm the debounce timer, then stop before the window elapses. The
	// pending timer must not fire into the closed events channel.
	require.NoError(t, os.WriteFile(domain.CacheDataPath(dir), []byte("{}"), domain.FilePerm))
	time.Sleep(20 * time.Millisecond)
	require.NoError(t, w.Stop())

	time.Sleep(2 * watcher.DefaultDebounceWindow)

	for {
		if _, ok := <-w.Events(); !ok {
			break
		}
	}
}

func TestCacheWatcher_StopIsIdempotent(t *testing.T) {
	dir := t.TempDir()

	w, err := watcher.NewCacheWatcher(dir)
	require.NoError(t, err)
	require.NoError(t, w.Start(context.Background()))

	require.NoError(t, w.Stop())
	require.NoError(t, w.Stop())

	_, ok := <-w.Events()
	require.False(t, ok)
}

func TestCacheWatcher_StartFailsOnMissingDir(t *testing.T) {
	w, err := watcher.NewCacheWatcher("/does/not/exist")
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Stop() })

	require.Error(t, w.Start(context.Background()))
}
