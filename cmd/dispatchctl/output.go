package main

import (
	"dispatch-simulation-service/internal/services"
	"fmt"
	"io"
	"text/tabwriter"
)

func writeTrucks(w io.Writer, trucks []services.TruckSummary) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "TRUCK\tDEPARTED\tCOMPLETED\tELAPSED\tMILES\tPACKAGES")
	for _, t := range trucks {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%.1f\t%d\n",
			t.TruckID, t.DepartAt, t.ReturnAt, t.Elapsed, t.Distance, len(t.PackageIDs))
	}
	return tw.Flush()
}

func writePackages(w io.Writer, statuses []services.PackageStatus) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tADDRESS\tCITY\tZIP\tDEADLINE\tKG\tSTATUS")
	for _, s := range statuses {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%d\t%s\n",
			s.PackageID, s.Address, s.City, s.Zipcode, s.Deadline, s.WeightKg, s.Describe())
	}
	return tw.Flush()
}
