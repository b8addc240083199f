package main

import (
	"dispatch-simulation-service/internal/domain"
	"dispatch-simulation-service/internal/services"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

func newStatusCmd(opts *rootOptions) *cobra.Command {
	var (
		at string
		id int
	)

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Print package status at a time of day",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := domain.ParseTimeOfDay(at)
			if err != nil {
				return fmt.Errorf("--at: %w", err)
			}
			if cmd.Flags().Changed("id") && id <= 0 {
				return errors.New("--id must be a positive integer")
			}

			sim, ctx, err := opts.simulator(cmd.Context())
			if err != nil {
				return err
			}

			var statuses []services.PackageStatus
			if id > 0 {
				s, err := sim.PackageAt(ctx, id, t)
				if err != nil {
					return err
				}
				statuses = []services.PackageStatus{s}
			} else {
				statuses, err = sim.StatusAt(ctx, t)
				if err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Status at %s\n\n", t)
			return writePackages(out, statuses)
		},
	}

	cmd.Flags().StringVar(&at, "at", "", "time of day as HH:MM (24-hour)")
	cmd.Flags().IntVar(&id, "id", 0, "single package id")
	_ = cmd.MarkFlagRequired("at")
	return cmd
}
