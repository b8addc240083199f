// Package app assembles the simulator from configuration for the binaries.
package app

import (
	"context"
	"database/sql"
	"dispatch-simulation-service/internal/adapters/distance"
	"dispatch-simulation-service/internal/adapters/repositories"
	"dispatch-simulation-service/internal/config"
	"dispatch-simulation-service/internal/metrics"
	"dispatch-simulation-service/internal/platform/db"
	"dispatch-simulation-service/internal/platform/obs"
	"dispatch-simulation-service/internal/ports"
	"dispatch-simulation-service/internal/services"
	"fmt"
)

// OpenDatabase opens the configured SQL backend.
func OpenDatabase(cfg config.DatabaseConfig) (*sql.DB, repositories.Dialect, error) {
	dialect, err := repositories.ParseDialect(cfg.Driver)
	if err != nil {
		return nil, "", fmt.Errorf("open database: %w", err)
	}

	var conn *sql.DB
	switch dialect {
	case repositories.DialectPostgres:
		conn, err = db.Open(cfg.URL)
	default:
		conn, err = db.OpenSQLite(cfg.Path)
	}
	if err != nil {
		return nil, "", fmt.Errorf("open database: %w", err)
	}
	return conn, dialect, nil
}

type datasetSource interface {
	ports.PackageRepository
	ports.DistanceTableRepository
}

// NewSimulator loads the static dataset once, from the seed file or the
// configured database, and returns a simulator over it.
func NewSimulator(ctx context.Context, cfg *config.Config, sink metrics.Sink) (*services.Simulator, error) {
	opts, err := cfg.Simulation.Resolve()
	if err != nil {
		return nil, fmt.Errorf("new simulator: %w", err)
	}

	var source datasetSource
	if cfg.Database.Driver == "" {
		seed, err := repositories.LoadDatasetFile(cfg.Data.SeedPath)
		if err != nil {
			return nil, fmt.Errorf("new simulator: %w", err)
		}
		source = repositories.NewMemoryRepository(seed)
	} else {
		conn, dialect, err := OpenDatabase(cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("new simulator: %w", err)
		}
		defer conn.Close()
		source = repositories.NewSQLRepository(conn, dialect)
	}

	pkgs, err := source.ListPackages(ctx)
	if err != nil {
		return nil, fmt.Errorf("new simulator: %w", err)
	}
	table, err := source.LoadDistanceTable(ctx)
	if err != nil {
		return nil, fmt.Errorf("new simulator: %w", err)
	}
	oracle, err := distance.NewMatrixOracle(table)
	if err != nil {
		return nil, fmt.Errorf("new simulator: %w", err)
	}
	if _, err := oracle.Distance(opts.Depot, opts.Depot); err != nil {
		return nil, fmt.Errorf("new simulator: depot: %w", err)
	}
	if hub := oracle.Depot(); hub.Address != opts.Depot {
		obs.Logger(ctx).Warn().
			Str("depot", opts.Depot).
			Str("first_location", hub.Address).
			Msg("configured depot is not the first location of the distance table")
	}

	obs.Logger(ctx).Info().
		Str("driver", driverName(cfg.Database.Driver)).
		Int("packages", len(pkgs)).
		Int("locations", len(oracle.Locations())).
		Msg("dataset loaded")

	return services.NewSimulator(opts, pkgs, oracle, sink)
}

func driverName(d string) string {
	if d == "" {
		return "seed_file"
	}
	return d
}
