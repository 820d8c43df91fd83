package watch

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quiet() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

func TestContentWatcher_DebouncesMarkdownChanges(t *testing.T) {
	dir := t.TempDir()
	var calls atomic.Int32
	w, err := New(dir, func(context.Context) { calls.Add(1) }, WithDebounce(100*time.Millisecond), WithLogger(quiet()))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, w.Start(ctx))
	t.Cleanup(func() { _ = w.Stop() })

	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "about.md"), []byte{byte('a' + i)}, 0o600))
	}

	assert.Eventually(t, func() bool { return calls.Load() == 1 }, 3*time.Second, 20*time.Millisecond)
	time.Sleep(300 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load(), "burst must collapse into one callback")
}

func TestContentWatcher_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	var calls atomic.Int32
	w, err := New(dir, func(context.Context) { calls.Add(1) }, WithDebounce(50*time.Millisecond), WithLogger(quiet()))
	require.NoError(t, err)
	require.NoError(t, w.Start(context.Background()))
	t.Cleanup(func() { _ = w.Stop() })

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".about.md.swp"), []byte("x"), 0o600))
	time.Sleep(300 * time.Millisecond)
	assert.Zero(t, calls.Load())
}

func TestContentWatcher_StartStop(t *testing.T) {
	dir := t.TempDir()
	w, err := New(dir, func(context.Context) {}, WithLogger(quiet()))
	require.NoError(t, err)

	require.NoError(t, w.Start(context.Background()))
	assert.Error(t, w.Start(context.Background()))
	require.NoError(t, w.Stop())
	require.NoError(t, w.Stop(), "second stop is a no-op")

	missing, err := New(filepath.Join(dir, "missing"), func(context.Context) {})
	require.NoError(t, err)
	assert.Error(t, missing.Start(context.Background()))
}

func TestContentWatcher_ContextCancelEndsLoop(t *testing.T) {
	w, err := New(t.TempDir(), func(context.Context) {}, WithLogger(quiet()))
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, w.Start(ctx))
	t.Cleanup(func() { _ = w.Stop() })

	cancel()
	select {
	case <-w.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("watch loop did not exit")
	}
}

func TestRelevant(t *testing.T) {
	assert.True(t, relevant(fsnotify.Event{Name: "/c/about.md", Op: fsnotify.Write}))
	assert.True(t, relevant(fsnotify.Event{Name: "/c/about.md", Op: fsnotify.Remove}))
	assert.False(t, relevant(fsnotify.Event{Name: "/c/about.md", Op: fsnotify.Chmod}))
	assert.False(t, relevant(fsnotify.Event{Name: "/c/about.md~", Op: fsnotify.Write}))
}
