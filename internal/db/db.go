package db

import (
	"database/sql"
	"embed"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/dori/portfolio/internal/model"
	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrations embed.FS

// DB wraps the SQL database connection
type DB struct {
	*sql.DB
	path string
}

// Changeset is one atomic unit of pending writes
type Changeset struct {
	Projects        []model.Project
	Items           []model.Item
	DeletedProjects []string
	DeletedItems    []string
}

// Empty reports whether the changeset carries no writes
func (c Changeset) Empty() bool {
	return len(c.Projects) == 0 && len(c.Items) == 0 &&
		len(c.DeletedProjects) == 0 && len(c.DeletedItems) == 0
}

// DefaultDataDir returns the default data directory path
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".portfolio"
	}
	return filepath.Join(home, ".local", "share", "portfolio")
}

// DefaultDBPath returns the default database file path
func DefaultDBPath() string {
	return filepath.Join(DefaultDataDir(), "portfolio.db")
}

// Open opens a database file and runs migrations
func Open(dbPath string) (*DB, error) {
	// Ensure the directory exists
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	dsn := fmt.Sprintf("file:%s?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=ON", dbPath)
	return open(dsn, dbPath)
}

// OpenMemory opens a private in-memory database. Its contents are gone once
// the database is closed.
func OpenMemory() (*DB, error) {
	// Each call gets its own named database so parallel tests don't share state
	name := "portfolio-" + uuid.New().String()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=ON", name)
	return open(dsn, "")
}

func open(dsn, path string) (*DB, error) {
	sqlDB, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports one writer, and an in-memory database lives
	// exactly as long as its last connection
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(0)

	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db := &DB{DB: sqlDB, path: path}

	if err := db.migrate(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return db, nil
}

// migrate runs database migrations using embedded SQL files
func (db *DB) migrate() error {
	// goose logs every applied migration to stdout otherwise
	goose.SetLogger(log.New(io.Discard, "", 0))
	goose.SetBaseFS(migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set dialect: %w", err)
	}

	if err := goose.Up(db.DB, "migrations"); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}

// Path returns the database file path, or "" for an in-memory database
func (db *DB) Path() string {
	return db.path
}

// Close closes the database connection
func (db *DB) Close() error {
	return db.DB.Close()
}

// Transaction executes a function within a transaction
func (db *DB) Transaction(fn func(*sql.Tx) error) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}

	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit()
}

// Load reads every project and item
func (db *DB) Load() ([]model.Project, []model.Item, error) {
	projects, err := db.GetProjects()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load projects: %w", err)
	}
	items, err := db.GetItems()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load items: %w", err)
	}
	return projects, items, nil
}

// Commit writes a changeset in a single transaction. Deletes run first so a
// cascade never removes a row written by the same changeset.
func (db *DB) Commit(cs Changeset) error {
	if cs.Empty() {
		return nil
	}

	return db.Transaction(func(tx *sql.Tx) error {
		for _, id := range cs.DeletedItems {
			if err := deleteItem(tx, id); err != nil {
				return fmt.Errorf("delete item %s: %w", id, err)
			}
		}
		for _, id := range cs.DeletedProjects {
			if err := deleteProject(tx, id); err != nil {
				return fmt.Errorf("delete project %s: %w", id, err)
			}
		}
		for _, p := range cs.Projects {
			if err := upsertProject(tx, p); err != nil {
				return fmt.Errorf("save project %s: %w", p.ID, err)
			}
		}
		for _, it := range cs.Items {
			if err := upsertItem(tx, it); err != nil {
				return fmt.Errorf("save item %s: %w", it.ID, err)
			}
		}
		return nil
	})
}
