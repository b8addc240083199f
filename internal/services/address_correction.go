package services

import (
	"dispatch-simulation-service/internal/domain"
	"dispatch-simulation-service/internal/store"
	"fmt"
)

// AddressCorrection replaces a package destination that becomes known
// during the day. Before the cutoff only the listed destination is known.
type AddressCorrection struct {
	PackageID int
	Cutoff    domain.TimeOfDay
	Before    domain.Destination
	After     domain.Destination
}

// DefaultAddressCorrection is the wrong address on package 9, fixed at 10:20.
func DefaultAddressCorrection() AddressCorrection {
	return AddressCorrection{
		PackageID: 9,
		Cutoff:    domain.At(10, 20),
		Before: domain.Destination{
			Address: "300 State St",
			City:    "Salt Lake City",
			State:   "UT",
			Zipcode: "84103",
		},
		After: domain.Destination{
			Address: "410 S State St",
			City:    "Salt Lake City",
			State:   "UT",
			Zipcode: "84111",
		},
	}
}

// Knowledge is what the dispatcher knows about corrections when a run starts.
// The zero value is end-of-day knowledge.
type Knowledge struct {
	at          domain.TimeOfDay
	pointInTime bool
}

// EndOfDay knows every correction regardless of its cutoff.
func EndOfDay() Knowledge { return Knowledge{} }

// AsOf knows the corrections whose cutoff is not after t.
func AsOf(t domain.TimeOfDay) Knowledge { return Knowledge{at: t, pointInTime: true} }

// At returns the query time and whether the knowledge is bound to one.
func (k Knowledge) At() (domain.TimeOfDay, bool) { return k.at, k.pointInTime }

// Label names the knowledge mode for logs and metrics.
func (k Knowledge) Label() string {
	if k.pointInTime {
		return "as_of"
	}
	return "end_of_day"
}

func (k Knowledge) destination(c AddressCorrection) domain.Destination {
	at, bound := k.At()
	if !bound || !at.Before(c.Cutoff) {
		return c.After
	}
	return c.Before
}

// ApplyCorrections installs the destination each correction resolves to
// under the given knowledge. It runs once per simulation, before dispatch.
func ApplyCorrections(packages *store.Table[*domain.Package], corrections []AddressCorrection, k Knowledge) error {
	for _, c := range corrections {
		pkg, ok := packages.Search(c.PackageID)
		if !ok {
			return fmt.Errorf("apply corrections: package %d: %w", c.PackageID, domain.ErrPackageNotFound)
		}
		pkg.Destination = k.destination(c)
		packages.Insert(pkg.PackageID, pkg)
	}
	return nil
}
