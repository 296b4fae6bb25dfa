// Package database persists the template catalog in SQLite or PostgreSQL.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/lawnchairsociety/cartograph/internal/logger"
)

// Database wraps a connection pool and the dialect it speaks.
type Database struct {
	db      *sql.DB
	dialect Dialect
	qb      *QueryBuilder
	log     *slog.Logger
}

// Open opens or creates the SQLite database at path.
func Open(path string) (*Database, error) {
	return OpenWithConfig(DefaultConfig(path))
}

// OpenWithConfig connects with cfg and migrates the schema.
func OpenWithConfig(cfg Config) (*Database, error) {
	dialect := NewDialect(DialectType(cfg.Driver))

	var dsn string
	switch DialectType(cfg.Driver) {
	case DialectPostgres:
		dsn = cfg.Postgres.DSN()
	case DialectSQLite, "":
		if dir := filepath.Dir(cfg.SQLitePath); dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("failed to create database directory: %w", err)
			}
		}
		dsn = cfg.SQLitePath
	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.Driver)
	}

	db, err := sql.Open(dialect.DriverName(), dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, ok := dialect.(*PostgresDialect); ok {
		db.SetMaxOpenConns(cfg.Postgres.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Postgres.MaxIdleConns)
		db.SetConnMaxLifetime(cfg.Postgres.ConnMaxLifetime)
	} else {
		// SQLite serializes writers; one connection keeps PRAGMAs in effect.
		db.SetMaxOpenConns(1)
	}

	d := &Database{
		db:      db,
		dialect: dialect,
		qb:      NewQueryBuilder(dialect),
		log:     logger.With("database"),
	}

	ctx := context.Background()
	for _, stmt := range dialect.InitStatements() {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("init %q: %w", stmt, err)
		}
	}
	if err := d.migrate(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	d.log.Debug("database ready", "driver", dialect.DriverName())
	return d, nil
}

// Close closes the database connection.
func (d *Database) Close() error {
	return d.db.Close()
}

// Dialect returns the SQL dialect in use.
func (d *Database) Dialect() Dialect {
	return d.dialect
}

func (d *Database) migrate(ctx context.Context) error {
	key := d.dialect.KeyType()
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS template_rooms (
			id ` + key + ` PRIMARY KEY,
			name TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			zone TEXT NOT NULL,
			locale TEXT NOT NULL DEFAULT '',
			coord_x INTEGER NOT NULL DEFAULT 0,
			coord_y INTEGER NOT NULL DEFAULT 0,
			coord_z INTEGER NOT NULL DEFAULT 0
		)`,
		`CREATE TABLE IF NOT EXISTS template_pathways (
			origin ` + key + ` NOT NULL REFERENCES template_rooms(id) ON DELETE CASCADE,
			direction TEXT NOT NULL,
			destination ` + key + ` NOT NULL,
			name TEXT NOT NULL DEFAULT '',
			target TEXT NOT NULL DEFAULT 'room',
			PRIMARY KEY (origin, direction)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_template_rooms_zone ON template_rooms(zone, locale)`,
	}

	for _, m := range migrations {
		if _, err := d.db.ExecContext(ctx, m); err != nil {
			return fmt.Errorf("migration failed: %w\nSQL: %s", err, m)
		}
	}
	return nil
}
