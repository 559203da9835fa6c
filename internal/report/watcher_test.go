package report

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileWatcherReportsLogChanges(t *testing.T) {
	dir := t.TempDir()

	watcher, err := NewFileWatcher([]string{dir})
	require.NoError(t, err)
	defer watcher.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "log.jsonl"),
		[]byte(`{"timestamp":"2022-01-03T09:00:00Z","name":"hello"}`+"\n"), 0644))

	select {
	case event := <-watcher.Events():
		assert.Equal(t, filepath.Join(dir, "log.jsonl"), event.Path)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for file event")
	}
}

func TestFileWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()

	watcher, err := NewFileWatcher([]string{dir})
	require.NoError(t, err)
	defer watcher.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644))

	select {
	case event := <-watcher.Events():
		t.Fatalf("unexpected event for %s", event.Path)
	case <-time.After(500 * time.Millisecond):
	}
}

func TestFileWatcherMissingDirectory(t *testing.T) {
	// A missing path is skipped by the walk, not fatal.
	watcher, err := NewFileWatcher([]string{filepath.Join(t.TempDir(), "missing")})
	require.NoError(t, err)
	assert.NoError(t, watcher.Close())
}
