package main

import (
	"context"
	"dispatch-simulation-service/internal/app"
	"dispatch-simulation-service/internal/config"
	"dispatch-simulation-service/internal/platform/obs"
	"dispatch-simulation-service/internal/services"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

type rootOptions struct {
	cfgPath  string
	dataPath string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "dispatchctl",
		Short:         "Simulate the delivery day and query package status",
		SilenceUsage:  true,
	}
	root.PersistentFlags().StringVarP(&opts.cfgPath, "config", "c", defaultConfigPath(), "configuration file")
	root.PersistentFlags().StringVar(&opts.dataPath, "data", "", "dataset JSON file (overrides the configured database)")

	root.AddCommand(newReportCmd(opts), newStatusCmd(opts))
	return root
}

func defaultConfigPath() string {
	path := config.Get("CONFIG_PATH", "config.yaml")
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}

// simulator loads configuration and the dataset for one command.
func (o *rootOptions) simulator(ctx context.Context) (*services.Simulator, context.Context, error) {
	cfg, err := config.Load(o.cfgPath)
	if err != nil {
		return nil, ctx, fmt.Errorf("load config: %w", err)
	}
	if o.dataPath != "" {
		cfg.Database.Driver = ""
		cfg.Data.SeedPath = o.dataPath
	}

	logger := obs.NewLogger("dispatchctl", cfg.Logging.Level)
	ctx = logger.WithContext(ctx)

	sim, err := app.NewSimulator(ctx, cfg, nil)
	if err != nil {
		return nil, ctx, err
	}
	return sim, ctx, nil
}
