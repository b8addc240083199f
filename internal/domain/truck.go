package domain

import (
	"fmt"
	"slices"
	"time"
)

const DefaultTruckCapacity = 16

// Delivery truck holding its undelivered packages and its simulated clock.
type Truck struct {
	TruckID       int
	Capacity      int
	StartLocation string
	DepartAt      TimeOfDay
	Clock         TimeOfDay
	Odometer      float64

	// Packages still on board; emptied as the route is driven.
	Packages []*Package
	// PackageIDs is the manifest as loaded; it survives delivery.
	PackageIDs []int
}

func NewTruck(id int, capacity int, hub string) *Truck {
	if capacity <= 0 {
		capacity = DefaultTruckCapacity
	}
	return &Truck{
		TruckID:       id,
		Capacity:      capacity,
		StartLocation: hub,
	}
}

// Load a single package onto the truck.
func (t *Truck) Load(pkg *Package) error {
	if len(t.Packages) >= t.Capacity {
		return fmt.Errorf("load truck: truck %d (capacity=%d): %w", t.TruckID, t.Capacity, ErrTruckFull)
	}
	t.Packages = append(t.Packages, pkg)
	t.PackageIDs = append(t.PackageIDs, pkg.PackageID)
	return nil
}

// Load multiple packages onto the truck.
func (t *Truck) LoadMultiple(pkgs []*Package) error {
	for _, pkg := range pkgs {
		if err := t.Load(pkg); err != nil {
			return err
		}
	}

	return nil
}

// Depart sets the truck clock to the departure time and stamps it as
// the load time of every package still on board.
func (t *Truck) Depart(at TimeOfDay) {
	t.DepartAt = at
	t.Clock = at
	for _, pkg := range t.Packages {
		pkg.Load(at)
	}
}

// Unload removes the package at index i from the undelivered list, keeping order.
func (t *Truck) Unload(i int) *Package {
	pkg := t.Packages[i]
	t.Packages = slices.Delete(t.Packages, i, i+1)
	return pkg
}

// Empty reports whether every package on board has been delivered.
func (t *Truck) Empty() bool { return len(t.Packages) == 0 }

// Elapsed is the time spent on the road since departure.
func (t *Truck) Elapsed() time.Duration { return t.Clock.Sub(t.DepartAt) }
