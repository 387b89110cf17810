package confloader

import (
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWatcher(t *testing.T) {
	w, err := NewWatcher()
	require.NoError(t, err)
	defer w.Stop()

	assert.NotNil(t, w.watcher)
	assert.NotNil(t, w.done)
	assert.NotNil(t, w.logger)
}

func TestNewWatcher_WithLogger(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	w, err := NewWatcher(WithWatcherLogger(logger))
	require.NoError(t, err)
	defer w.Stop()

	assert.Same(t, logger, w.logger)
}

func TestWatcher_Watch_NonexistentDir(t *testing.T) {
	w, err := NewWatcher()
	require.NoError(t, err)
	defer w.Stop()

	assert.Error(t, w.Watch("/nonexistent/path/config.yaml"))
}

func TestWatcher_OnChange(t *testing.T) {
	w, err := NewWatcher()
	require.NoError(t, err)
	defer w.Stop()

	var count int
	for i := 0; i < 3; i++ {
		w.OnChange(func(string) { count++ })
	}

	w.notifyCallbacks("/test/path")
	assert.Equal(t, 3, count)
}

func TestWatcher_Stop_Twice(t *testing.T) {
	w, err := NewWatcher()
	require.NoError(t, err)

	assert.NoError(t, w.Stop())
	assert.NoError(t, w.Stop())
}

func TestWatcher_DetectsWrite(t *testing.T) {
	dir := t.TempDir()
	configFile := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte("log:\n  level: info\n"), 0o644))

	w, err := NewWatcher()
	require.NoError(t, err)
	defer w.Stop()
	require.NoError(t, w.Watch(configFile))

	var (
		mu      sync.Mutex
		changed []string
	)
	w.OnChange(func(path string) {
		mu.Lock()
		changed = append(changed, path)
		mu.Unlock()
	})
	w.StartAsync()

	// Sibling files in the same directory must not trigger callbacks.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x: 1\n"), 0o644))
	require.NoError(t, os.WriteFile(configFile, []byte("log:\n  level: debug\n"), 0o644))

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(changed) > 0
	}, 2*time.Second, 10*time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	for _, p := range changed {
		assert.Equal(t, "config.yaml", filepath.Base(p))
	}
}
