package app

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/dori/portfolio/internal/store"
	"github.com/dori/portfolio/internal/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFromEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("PORTFOLIO_DATA_DIR", dir)
	t.Setenv("PORTFOLIO_IN_MEMORY", "true")
	t.Setenv("PORTFOLIO_LOG_LEVEL", "debug")
	t.Setenv("PORTFOLIO_NOTIFY", "true")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, dir, cfg.DataDir)
	assert.Equal(t, filepath.Join(dir, "portfolio.db"), cfg.DBPath)
	assert.True(t, cfg.InMemory)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.Notify)
}

func TestLoadConfigExplicitDBPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(t.TempDir(), "elsewhere.db")
	t.Setenv("PORTFOLIO_DATA_DIR", dir)
	t.Setenv("PORTFOLIO_DB_PATH", path)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, path, cfg.DBPath)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.False(t, cfg.InMemory)
}

func TestLoadConfigRejectsBadBool(t *testing.T) {
	t.Setenv("PORTFOLIO_IN_MEMORY", "sometimes")
	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger("info", &buf)
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("shown", "key", "value")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "key=value")

	_, err = NewLogger("chatty", &buf)
	assert.Error(t, err)
}

func TestNewInMemory(t *testing.T) {
	cfg := DefaultConfig()
	cfg.InMemory = true
	cfg.DataDir = filepath.Join(t.TempDir(), "unused")

	a, err := New(cfg)
	require.NoError(t, err)

	assert.Equal(t, 20, a.Catalog.Len())
	assert.False(t, a.Notifier.IsEnabled())
	assert.Nil(t, a.lockFile)

	p := a.Tracker.AddProject()
	_, err = a.Tracker.AddItem(p)
	require.NoError(t, err)
	assert.Equal(t, 1, a.Store.CountItems(store.AllItems).Value)

	require.NoError(t, a.Close())
	assert.NoDirExists(t, cfg.DataDir)
}

func TestDurableAppIsSingleInstance(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DataDir = t.TempDir()
	cfg.DBPath = filepath.Join(cfg.DataDir, "portfolio.db")

	first, err := New(cfg)
	require.NoError(t, err)

	_, err = New(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already running")

	first.Tracker.AddProject()
	require.NoError(t, first.Close())

	// The lock is released on close and the data is still there
	second, err := New(cfg)
	require.NoError(t, err)
	defer second.Close()
	assert.Equal(t, 1, second.Store.CountProjects(store.AllProjects).Value)
	assert.FileExists(t, cfg.DBPath)
}

func TestNewSelectsTheme(t *testing.T) {
	t.Cleanup(func() { theme.SetTheme(theme.Nord) })

	cfg := DefaultConfig()
	cfg.InMemory = true
	cfg.Theme = "dracula"
	a, err := New(cfg)
	require.NoError(t, err)
	defer a.Close()
	assert.Equal(t, "dracula", theme.Current.Theme.Name)

	cfg.Theme = "solarized"
	_, err = New(cfg)
	assert.ErrorContains(t, err, "unknown theme")
}

func TestNewRejectsBadLogLevel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.InMemory = true
	cfg.LogLevel = "loud"

	_, err := New(cfg)
	assert.Error(t, err)
}
