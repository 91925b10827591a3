package app

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/dori/portfolio/internal/awards"
	"github.com/dori/portfolio/internal/db"
	"github.com/dori/portfolio/internal/notify"
	"github.com/dori/portfolio/internal/store"
	"github.com/dori/portfolio/internal/theme"
	"github.com/dori/portfolio/internal/tracker"
	"github.com/gofrs/flock"
)

// App holds the application state and dependencies
type App struct {
	Store    *store.Store
	Tracker  *tracker.Tracker
	Catalog  *awards.Catalog
	Notifier *notify.Notifier
	Logger   *slog.Logger
	DataDir  string

	watcher  *awards.Watcher
	lockFile *flock.Flock
}

// Config holds application configuration
type Config struct {
	DataDir  string `env:"PORTFOLIO_DATA_DIR"`
	DBPath   string `env:"PORTFOLIO_DB_PATH"`
	InMemory bool   `env:"PORTFOLIO_IN_MEMORY"`
	LogLevel string `env:"PORTFOLIO_LOG_LEVEL"`
	Notify   bool   `env:"PORTFOLIO_NOTIFY"`
	Theme    string `env:"PORTFOLIO_THEME"`
}

// DefaultConfig returns the default application configuration
func DefaultConfig() *Config {
	dataDir := db.DefaultDataDir()
	return &Config{
		DataDir:  dataDir,
		DBPath:   filepath.Join(dataDir, "portfolio.db"),
		LogLevel: "warn",
		Theme:    theme.Nord.Name,
	}
}

// LoadConfig returns DefaultConfig overlaid with PORTFOLIO_* environment
// variables
func LoadConfig() (*Config, error) {
	cfg := DefaultConfig()
	dataDir := cfg.DataDir
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	// A relocated data dir carries the database with it unless a path was given
	if cfg.DataDir != dataDir && os.Getenv("PORTFOLIO_DB_PATH") == "" {
		cfg.DBPath = filepath.Join(cfg.DataDir, "portfolio.db")
	}
	return cfg, nil
}

// NewLogger builds a text logger writing to w at the named level
func NewLogger(level string, w io.Writer) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	if w == nil {
		w = os.Stderr
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}

// New creates a new application instance. A missing or corrupt award
// catalog is a startup failure.
func New(cfg *Config) (*App, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "warn"
	}

	logger, err := NewLogger(cfg.LogLevel, os.Stderr)
	if err != nil {
		return nil, err
	}

	if cfg.Theme != "" {
		t, ok := theme.ByName(cfg.Theme)
		if !ok {
			return nil, fmt.Errorf("unknown theme %q (available: %s)", cfg.Theme, strings.Join(theme.Names(), ", "))
		}
		theme.SetTheme(t)
	}

	catalog, err := awards.LoadEmbedded()
	if err != nil {
		return nil, fmt.Errorf("failed to load awards: %w", err)
	}

	app := &App{
		Catalog:  catalog,
		Notifier: notify.NewNotifier(),
		Logger:   logger,
		DataDir:  cfg.DataDir,
	}
	app.Notifier.SetEnabled(cfg.Notify)

	opts := store.Options{Mode: store.ModeMemory}
	if !cfg.InMemory {
		// Ensure data directory exists
		if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
		// Acquire lock to ensure single instance
		if err := app.acquireLock(); err != nil {
			return nil, err
		}
		opts = store.Options{Mode: store.ModeDurable, Path: cfg.DBPath}
	}

	s, err := store.Open(opts, store.WithLogger(logger))
	if err != nil {
		app.releaseLock()
		return nil, fmt.Errorf("failed to open store: %w", err)
	}
	app.Store = s
	app.Tracker = tracker.New(s, catalog)

	if app.Notifier.IsEnabled() {
		app.watcher = awards.Watch(s.Bus(), catalog, s, app.Notifier, logger)
	}

	logger.Debug("application started", "mode", opts.Mode, "db", opts.Path)
	return app, nil
}

// acquireLock acquires an exclusive file lock to prevent multiple instances
func (a *App) acquireLock() error {
	lockPath := filepath.Join(a.DataDir, "portfolio.lock")
	a.lockFile = flock.New(lockPath)

	locked, err := a.lockFile.TryLock()
	if err != nil {
		return fmt.Errorf("failed to acquire lock: %w", err)
	}

	if !locked {
		return fmt.Errorf("another instance of portfolio is already running")
	}

	return nil
}

// releaseLock releases the file lock
func (a *App) releaseLock() {
	if a.lockFile != nil {
		a.lockFile.Unlock()
	}
}

// Close saves outstanding changes and cleans up application resources
func (a *App) Close() error {
	var errs []error

	if a.watcher != nil {
		a.watcher.Close()
	}

	if a.Store != nil {
		if res := a.Store.Save(); res.Degraded() {
			errs = append(errs, res.Err)
		}
		if err := a.Store.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close store: %w", err))
		}
	}

	a.releaseLock()

	if len(errs) > 0 {
		return errs[0]
	}
	return nil
}
