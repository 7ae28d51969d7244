package config

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWatcher(t *testing.T) {
	t.Parallel()

	w, err := NewWatcher("config.yaml", *DefaultConfig(), nil)
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(w.path))
	assert.Equal(t, DefaultDebounceDelay, w.debounceDelay)
	require.NoError(t, w.Stop())
}

func TestWatcher_StartInvalidFile(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "logLevel: loud\n")
	w, err := NewWatcher(path, *DefaultConfig(), nil)
	require.NoError(t, err)

	assert.Error(t, w.Start(context.Background()))
	assert.Nil(t, w.GetLastConfig())
	require.NoError(t, w.Stop())
}

func TestWatcher_Reload(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "logLevel: info\n")

	var mu sync.Mutex
	var levels []string
	var errs []error

	base := *DefaultConfig()
	base.MetricsAddr = ":9999"

	w, err := NewWatcher(path, base,
		func(cfg *Config) {
			mu.Lock()
			defer mu.Unlock()
			levels = append(levels, cfg.LogLevel)
		},
		WithDebounceDelay(10*time.Millisecond),
		WithErrorCallback(func(err error) {
			mu.Lock()
			defer mu.Unlock()
			errs = append(errs, err)
		}),
	)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, w.Start(ctx))
	defer func() { assert.NoError(t, w.Stop()) }()

	require.NotNil(t, w.GetLastConfig())
	assert.Equal(t, "info", w.GetLastConfig().LogLevel)

	require.NoError(t, os.WriteFile(path, []byte("logLevel: debug\n"), 0o600))
	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(levels) > 0 && levels[len(levels)-1] == "debug"
	}, 2*time.Second, 10*time.Millisecond)

	last := w.GetLastConfig()
	assert.Equal(t, "debug", last.LogLevel)
	assert.Equal(t, ":9999", last.MetricsAddr, "base values survive reloads")

	// An invalid edit is reported and the previous configuration is kept.
	require.NoError(t, os.WriteFile(path, []byte("logLevel: loud\n"), 0o600))
	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(errs) > 0
	}, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, "debug", w.GetLastConfig().LogLevel)
}

func TestWatcher_StartTwice(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "logLevel: info\n")
	w, err := NewWatcher(path, *DefaultConfig(), nil)
	require.NoError(t, err)

	require.NoError(t, w.Start(context.Background()))
	require.NoError(t, w.Start(context.Background()))
	require.NoError(t, w.Stop())
}
