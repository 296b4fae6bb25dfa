// migrate-to-postgres copies a template catalog from SQLite to PostgreSQL.
//
// Usage:
//
//	go run ./cmd/migrate-to-postgres \
//	    -sqlite data/cartograph.db \
//	    -pg-host localhost \
//	    -pg-user cartograph \
//	    -pg-password cartograph \
//	    -pg-database cartograph
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/lawnchairsociety/cartograph/internal/database"
	"github.com/lawnchairsociety/cartograph/internal/logger"
)

func main() {
	sqlitePath := flag.String("sqlite", "data/cartograph.db", "Path to SQLite catalog")
	pgHost := flag.String("pg-host", "localhost", "PostgreSQL host")
	pgPort := flag.Int("pg-port", 5432, "PostgreSQL port")
	pgUser := flag.String("pg-user", "cartograph", "PostgreSQL user")
	pgPassword := flag.String("pg-password", "", "PostgreSQL password")
	pgDatabase := flag.String("pg-database", "cartograph", "PostgreSQL database name")
	pgSSLMode := flag.String("pg-sslmode", "disable", "PostgreSQL SSL mode")
	dryRun := flag.Bool("dry-run", false, "Load the SQLite catalog and report without writing")
	loggingConfig := flag.String("logging", "data/logging.yaml", "Path to logging config YAML file")
	flag.Parse()

	logConfig, err := logger.LoadConfig(*loggingConfig)
	if err == nil {
		err = logger.Initialize(logConfig)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging: %v\n", err)
		os.Exit(1)
	}

	pg := database.DefaultConfig("")
	pg.Driver = string(database.DialectPostgres)
	pg.Postgres.Host = *pgHost
	pg.Postgres.Port = *pgPort
	pg.Postgres.User = *pgUser
	pg.Postgres.Password = *pgPassword
	pg.Postgres.Database = *pgDatabase
	pg.Postgres.SSLMode = *pgSSLMode

	if err := migrate(context.Background(), *sqlitePath, pg, *dryRun); err != nil {
		logger.Error("Migration failed", "error", err)
		os.Exit(1)
	}
}

func migrate(ctx context.Context, sqlitePath string, pg database.Config, dryRun bool) error {
	if _, err := os.Stat(sqlitePath); err != nil {
		return fmt.Errorf("sqlite catalog: %w", err)
	}

	src, err := database.Open(sqlitePath)
	if err != nil {
		return err
	}
	defer src.Close()

	catalog, err := src.LoadCatalog(ctx)
	if err != nil {
		return err
	}
	logger.Info("Loaded SQLite catalog", "path", sqlitePath, "rooms", catalog.Len(), "zones", len(catalog.Zones()))

	if dryRun {
		for _, zone := range catalog.Zones() {
			logger.Info("Would migrate zone", "zone", zone, "rooms", len(catalog.RegionIDs(zone)))
		}
		return nil
	}

	dst, err := database.OpenWithConfig(pg)
	if err != nil {
		return err
	}
	defer dst.Close()

	if err := dst.SaveCatalog(ctx, catalog); err != nil {
		return err
	}
	n, err := dst.RoomCount(ctx)
	if err != nil {
		return err
	}
	if n != catalog.Len() {
		return fmt.Errorf("postgres holds %d rooms after migration, expected %d", n, catalog.Len())
	}
	logger.Info("Migration complete", "rooms", n)
	return nil
}
