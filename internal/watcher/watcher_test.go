package watcher

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcherSignalsOnSave(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "demo.tatata")
	require.NoError(t, os.WriteFile(path, []byte("0>keydown a\n"), 0644))

	fw, err := NewFileWatcher(path)
	require.NoError(t, err)
	defer fw.Close()

	require.NoError(t, os.WriteFile(path, []byte("0>keyup a\n"), 0644))

	select {
	case <-fw.Events():
	case <-time.After(2 * time.Second):
		t.Fatal("no event after writing the watched file")
	}
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "demo.tatata")
	require.NoError(t, os.WriteFile(path, []byte("0>keydown a\n"), 0644))

	fw, err := NewFileWatcher(path)
	require.NoError(t, err)
	defer fw.Close()

	other := filepath.Join(dir, "other.tatata")
	require.NoError(t, os.WriteFile(other, []byte("x"), 0644))

	select {
	case <-fw.Events():
		t.Fatal("unexpected event for an unrelated file")
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatcherMissingDirectory(t *testing.T) {
	_, err := NewFileWatcher(filepath.Join(t.TempDir(), "nope", "demo.tatata"))
	assert.Error(t, err)
}
