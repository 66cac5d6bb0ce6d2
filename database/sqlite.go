package database

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"proxyctl/core"
	"proxyctl/logger"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/mattn/go-sqlite3"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// DB is the per-user SQLite file holding the proxy settings (on hosts without
// a registry) and the change journal.
type DB struct {
	conn *sql.DB
	path string
}

// Open creates the database directory if needed, connects and applies
// migrations. Failures wrap core.ErrStoreUnavailable.
func Open(dataSourceName string) (*DB, error) {
	dbDir := filepath.Dir(dataSourceName)
	if dbDir != "." && dbDir != "" {
		if err := os.MkdirAll(dbDir, 0750); err != nil {
			logger.Error("Failed to create database directory %s: %v", dbDir, err)
			return nil, fmt.Errorf("%w: failed to create database directory %s: %v", core.ErrStoreUnavailable, dbDir, err)
		}
	}

	conn, err := sql.Open("sqlite3", dataSourceName+"?_foreign_keys=on&_busy_timeout=5000")
	if err != nil {
		logger.Error("Failed to open database: %v", err)
		return nil, fmt.Errorf("%w: failed to open database: %v", core.ErrStoreUnavailable, err)
	}
	// One connection keeps ":memory:" databases coherent across calls.
	conn.SetMaxOpenConns(1)
	if err = conn.Ping(); err != nil {
		conn.Close()
		logger.Error("Failed to connect to database: %v", err)
		return nil, fmt.Errorf("%w: failed to connect to database: %v", core.ErrStoreUnavailable, err)
	}

	db := &DB{conn: conn, path: dataSourceName}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, err
	}
	return db, nil
}

func (d *DB) migrate() error {
	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("failed to load embedded migrations: %w", err)
	}
	driver, err := sqlite3.WithInstance(d.conn, &sqlite3.Config{})
	if err != nil {
		return fmt.Errorf("failed to initialize migration driver: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", source, "sqlite3", driver)
	if err != nil {
		logger.Error("Failed to initialize migrations: %v", err)
		return fmt.Errorf("failed to initialize migrations: %w", err)
	}

	logger.Debug("Applying database migrations to %s...", d.path)
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		logger.Error("Failed to apply migrations: %v", err)
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	return nil
}

// Path is the data source the database was opened with.
func (d *DB) Path() string {
	return d.path
}

func (d *DB) Close() error {
	return d.conn.Close()
}
