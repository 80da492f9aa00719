package ingest

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartWatcher_DebouncedBurst(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	paths, errs, err := StartWatcher(ctx, WatchConfig{
		Roots:    []string{dir},
		Debounce: 50 * time.Millisecond,
	}, nil)
	require.NoError(t, err)

	// A burst of writes inside the debounce window must come out as one
	// batch without losing any photo.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.jpg"), []byte("a"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.png"), []byte("b"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("n"), 0o644))

	got := map[string]bool{}
	deadline := time.After(5 * time.Second)
	for len(got) < 2 {
		select {
		case p := <-paths:
			got[filepath.Base(p)] = true
		case werr := <-errs:
			t.Fatalf("watcher error: %v", werr)
		case <-deadline:
			t.Fatalf("timed out waiting for events, got %v", got)
		}
	}

	assert.True(t, got["a.jpg"])
	assert.True(t, got["b.png"])
	assert.False(t, got["notes.txt"])
}

func TestStartWatcher_InitialScan(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "existing.jpg"), []byte("x"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	paths, errs, err := StartWatcher(ctx, WatchConfig{
		Roots:       []string{dir},
		InitialScan: true,
	}, nil)
	require.NoError(t, err)

	select {
	case p := <-paths:
		assert.Equal(t, "existing.jpg", filepath.Base(p))
	case werr := <-errs:
		t.Fatalf("watcher error: %v", werr)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for initial scan event")
	}
}
