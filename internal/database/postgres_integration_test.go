package database

import (
	"context"
	"os"
	"strconv"
	"testing"
	"time"
)

// postgresTestConfig reads CARTOGRAPH_TEST_POSTGRES_* variables. Tests are
// skipped unless CARTOGRAPH_TEST_POSTGRES is set.
func postgresTestConfig(t *testing.T) Config {
	t.Helper()
	if os.Getenv("CARTOGRAPH_TEST_POSTGRES") == "" {
		t.Skip("Skipping PostgreSQL test: CARTOGRAPH_TEST_POSTGRES not set")
	}

	env := func(key, fallback string) string {
		if v := os.Getenv(key); v != "" {
			return v
		}
		return fallback
	}
	port, err := strconv.Atoi(env("CARTOGRAPH_TEST_POSTGRES_PORT", "5432"))
	if err != nil {
		t.Fatalf("bad CARTOGRAPH_TEST_POSTGRES_PORT: %v", err)
	}

	cfg := DefaultConfig("")
	cfg.Driver = string(DialectPostgres)
	cfg.Postgres.Host = env("CARTOGRAPH_TEST_POSTGRES_HOST", "localhost")
	cfg.Postgres.Port = port
	cfg.Postgres.User = env("CARTOGRAPH_TEST_POSTGRES_USER", "cartograph")
	cfg.Postgres.Password = env("CARTOGRAPH_TEST_POSTGRES_PASSWORD", "cartograph")
	cfg.Postgres.Database = env("CARTOGRAPH_TEST_POSTGRES_DATABASE", "cartograph_test")
	cfg.Postgres.ConnMaxLifetime = time.Minute
	return cfg
}

func TestPostgresOpenWithConfig(t *testing.T) {
	cfg := postgresTestConfig(t)
	db, err := OpenWithConfig(cfg)
	if err != nil {
		t.Fatalf("Failed to open PostgreSQL database: %v", err)
	}
	defer db.Close()

	if got := db.db.Stats().MaxOpenConnections; got != cfg.Postgres.MaxOpenConns {
		t.Errorf("MaxOpenConnections = %d, want %d", got, cfg.Postgres.MaxOpenConns)
	}
}

func TestPostgresCatalogRoundTrip(t *testing.T) {
	cfg := postgresTestConfig(t)
	db, err := OpenWithConfig(cfg)
	if err != nil {
		t.Fatalf("Failed to open PostgreSQL database: %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	if err := db.SaveCatalog(ctx, sampleCatalog(t)); err != nil {
		t.Fatalf("SaveCatalog: %v", err)
	}
	got, err := db.LoadCatalog(ctx)
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	if got.Len() != 4 {
		t.Errorf("Len = %d, want 4", got.Len())
	}
}
