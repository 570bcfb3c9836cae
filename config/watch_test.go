package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWatcher(t *testing.T) (*Watcher, string, string) {
	t.Helper()
	dir := t.TempDir()
	tuning := filepath.Join(dir, "tuning.yaml")
	notes := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(tuning, []byte("arena:\n  tick_rate: 60\n"), 0o644))
	require.NoError(t, os.WriteFile(notes, []byte("hello\n"), 0o644))

	w, err := NewWatcher(tuning)
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })
	return w, tuning, notes
}

func expectEvent(t *testing.T, w *Watcher) string {
	t.Helper()
	select {
	case path := <-w.Events:
		return path
	case <-time.After(2 * time.Second):
		t.Fatal("no watcher event")
		return ""
	}
}

func expectNoEvent(t *testing.T, w *Watcher) {
	t.Helper()
	select {
	case path := <-w.Events:
		t.Fatalf("unexpected event for %s", path)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcherReportsYAMLWrites(t *testing.T) {
	w, tuning, _ := newTestWatcher(t)

	require.NoError(t, os.WriteFile(tuning, []byte("arena:\n  tick_rate: 30\n"), 0o644))

	assert.Equal(t, tuning, expectEvent(t, w))
	expectNoEvent(t, w)
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	w, _, notes := newTestWatcher(t)

	require.NoError(t, os.WriteFile(notes, []byte("changed\n"), 0o644))

	expectNoEvent(t, w)
}

func TestWatcherDebouncesBursts(t *testing.T) {
	w, tuning, _ := newTestWatcher(t)

	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(tuning, []byte("arena:\n  tick_rate: 30\n"), 0o644))
	}

	assert.Equal(t, tuning, expectEvent(t, w))
	expectNoEvent(t, w)
}

func TestWatcherCloseClosesEvents(t *testing.T) {
	w, _, _ := newTestWatcher(t)

	require.NoError(t, w.Close())
	assert.NoError(t, w.Close(), "close is idempotent")

	select {
	case _, ok := <-w.Events:
		assert.False(t, ok)
	case <-time.After(2 * time.Second):
		t.Fatal("events channel left open")
	}
}
