package prefabs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcherReportsAfterLastWrite(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })

	path := filepath.Join(dir, "fighter.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: half"), 0o644))
	time.Sleep(20 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("name: whole\n"), 0o644))

	select {
	case got := <-w.Events:
		assert.Equal(t, path, got)
		data, err := os.ReadFile(got)
		require.NoError(t, err)
		assert.Equal(t, "name: whole\n", string(data))
	case <-time.After(5 * time.Second):
		t.Fatal("no watcher event")
	}

	select {
	case got := <-w.Events:
		t.Fatalf("burst reported twice: %s", got)
	case <-time.After(3 * watchDebounce):
	}
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	select {
	case got := <-w.Events:
		t.Fatalf("unexpected event for %s", got)
	case <-time.After(3 * watchDebounce):
	}

	require.NoError(t, w.Close())
	_, ok := <-w.Events
	assert.False(t, ok, "events close with the watcher")
}
