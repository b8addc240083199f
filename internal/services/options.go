package services

import (
	"dispatch-simulation-service/internal/domain"
	"errors"
	"fmt"
)

const DefaultDepot = "4001 South 700 East"

// TruckSchedule sets when a truck leaves the depot. A truck that waits for
// a return departs when the earliest unclaimed truck finishes its route.
type TruckSchedule struct {
	TruckID       int
	DepartAt      domain.TimeOfDay
	WaitForReturn bool
}

// Options configures a simulated service day.
type Options struct {
	Depot           string
	SpeedMph        float64
	TruckCapacity   int
	DefaultLoadTime domain.TimeOfDay
	Partition       *domain.Partition
	Schedules       []TruckSchedule
	Delay           DelayRule
	Corrections     []AddressCorrection
}

// DefaultManifests is the static three-truck assignment of the 40-package day.
func DefaultManifests() []domain.TruckManifest {
	return []domain.TruckManifest{
		{TruckID: 1, PackageIDs: []int{4, 5, 7, 12, 13, 14, 15, 16, 19, 20, 21, 29, 31, 34, 37, 40}},
		{TruckID: 2, PackageIDs: []int{1, 2, 3, 6, 8, 10, 17, 18, 27, 28, 30, 32, 33, 35, 36, 38}},
		{TruckID: 3, PackageIDs: []int{9, 11, 22, 23, 24, 25, 26, 39}},
	}
}

// DefaultOptions returns the standard service day: truck 1 at 08:00,
// truck 2 at 09:05 with the delayed packages, truck 3 when the first returns.
func DefaultOptions() Options {
	partition, err := domain.NewPartition(DefaultManifests())
	if err != nil {
		panic(err)
	}
	return Options{
		Depot:           DefaultDepot,
		SpeedMph:        DefaultSpeedMph,
		TruckCapacity:   domain.DefaultTruckCapacity,
		DefaultLoadTime: domain.At(8, 0),
		Partition:       partition,
		Schedules: []TruckSchedule{
			{TruckID: 1, DepartAt: domain.At(8, 0)},
			{TruckID: 2, DepartAt: domain.At(9, 5)},
			{TruckID: 3, WaitForReturn: true},
		},
		Delay:       DefaultDelayRule(),
		Corrections: []AddressCorrection{DefaultAddressCorrection()},
	}
}

func (o Options) Validate() error {
	if o.Depot == "" {
		return errors.New("options: depot must be non-empty")
	}
	if o.SpeedMph <= 0 {
		return fmt.Errorf("options: speed must be positive, got %v", o.SpeedMph)
	}
	if o.Partition == nil {
		return errors.New("options: partition is required")
	}

	scheduled := make(map[int]bool, len(o.Schedules))
	fixed := 0
	for _, s := range o.Schedules {
		if scheduled[s.TruckID] {
			return fmt.Errorf("options: truck %d scheduled twice", s.TruckID)
		}
		if _, ok := o.Partition.Manifest(s.TruckID); !ok {
			return fmt.Errorf("options: truck %d has a schedule but no manifest", s.TruckID)
		}
		scheduled[s.TruckID] = true
		if !s.WaitForReturn {
			fixed++
		}
	}
	for _, m := range o.Partition.Manifests() {
		if !scheduled[m.TruckID] {
			return fmt.Errorf("options: truck %d has no schedule", m.TruckID)
		}
	}
	if fixed == 0 && len(o.Schedules) > 0 {
		return errors.New("options: at least one truck needs a fixed departure")
	}

	return nil
}
