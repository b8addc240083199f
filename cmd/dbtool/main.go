package main

import (
	"context"
	"database/sql"
	"dispatch-simulation-service/internal/adapters/repositories"
	"dispatch-simulation-service/internal/app"
	"dispatch-simulation-service/internal/config"
	"dispatch-simulation-service/internal/platform/obs"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// dbtool creates the schema and seeds the dataset into the configured
// database (postgres via DATABASE_URL, or a SQLite file).
func main() {
	envErr := godotenv.Load()

	cfg, err := config.Load(config.Get("CONFIG_PATH", "config.yaml"))
	if err != nil {
		logger := obs.NewLogger("dbtool", "info")
		logger.Fatal().Err(err).Msg("load config")
	}
	logger := obs.NewLogger("dbtool", cfg.Logging.Level)
	if envErr != nil {
		logger.Info().Msg("no .env file found (using environment variables)")
	}

	if cfg.Database.Driver == "" {
		cfg.Database.Driver = config.Get("DB_DRIVER", "postgres")
	}
	if err := cfg.Database.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("database config")
	}

	conn, dialect, err := app.OpenDatabase(cfg.Database)
	if err != nil {
		logger.Fatal().Err(err).Msg("open database")
	}
	defer conn.Close()

	ctx := logger.WithContext(context.Background())
	if err := initAndSeed(ctx, conn, dialect, cfg.Data.SeedPath); err != nil {
		logger.Fatal().Err(err).Msg("init and seed")
	}
}

func initAndSeed(ctx context.Context, conn *sql.DB, dialect repositories.Dialect, seedPath string) error {
	logger := zerolog.Ctx(ctx)

	logger.Info().Msg("initializing database schema")
	if err := repositories.InitSchema(ctx, conn); err != nil {
		return fmt.Errorf("schema initialization failed: %w", err)
	}
	logger.Info().Msg("schema ready")

	seed, err := repositories.LoadDatasetFile(seedPath)
	if err != nil {
		return err
	}

	logger.Info().Str("seed", seedPath).Msg("seeding database")
	if err := repositories.SeedDataset(ctx, conn, dialect, seed); err != nil {
		return fmt.Errorf("seeding failed: %w", err)
	}
	logger.Info().
		Int("packages", len(seed.Packages)).
		Int("locations", len(seed.Locations)).
		Msg("seeding complete")

	return nil
}
