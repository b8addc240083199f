package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newReportCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Print truck statistics and every package as delivered at end of day",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sim, ctx, err := opts.simulator(cmd.Context())
			if err != nil {
				return err
			}

			report, err := sim.Report(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if err := writeTrucks(out, report.Trucks); err != nil {
				return err
			}
			fmt.Fprintf(out, "\nTotal distance: %.1f miles\n\n", report.TotalDistance)
			return writePackages(out, report.Packages)
		},
	}
}
