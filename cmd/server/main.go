package main

import (
	"context"
	"dispatch-simulation-service/internal/api"
	"dispatch-simulation-service/internal/app"
	"dispatch-simulation-service/internal/config"
	"dispatch-simulation-service/internal/metrics"
	"dispatch-simulation-service/internal/platform/obs"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// main is the application composition root.
// It loads the dataset behind the repository ports, builds the simulator
// and starts the HTTP server.
func main() {
	envErr := godotenv.Load()

	cfg, err := config.Load(config.Get("CONFIG_PATH", "config.yaml"))
	if err != nil {
		logger := obs.NewLogger("server", "info")
		logger.Fatal().Err(err).Msg("load config")
	}

	logger := obs.NewLogger("server", cfg.Logging.Level)
	if envErr != nil {
		logger.Info().Msg("no .env file found (using environment variables)")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = logger.WithContext(ctx)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	sink, err := metrics.NewPromSink(reg)
	if err != nil {
		logger.Fatal().Err(err).Msg("register metrics")
	}

	sim, err := app.NewSimulator(ctx, cfg, sink)
	if err != nil {
		logger.Fatal().Err(err).Msg("build simulator")
	}

	router := api.NewRouter(sim, reg, logger)

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("shutdown")
		}
	}()

	logger.Info().Str("addr", srv.Addr).Msg("server listening")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal().Err(err).Msg("serve")
	}
}
