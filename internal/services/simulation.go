package services

import (
	"dispatch-simulation-service/internal/domain"
	"dispatch-simulation-service/internal/metrics"
	"dispatch-simulation-service/internal/store"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Simulation is the timed delivery history of one run. It owns its package
// store; projections read it and never write back.
type Simulation struct {
	RunID     uuid.UUID
	Knowledge Knowledge
	Store     *store.Table[*domain.Package]
	Trucks    []*domain.Truck
	Plans     []*domain.RoutePlan
	Partition *domain.Partition

	delay DelayRule
	sink  metrics.Sink
}

// TruckSummary reports a truck's trip after the run.
type TruckSummary struct {
	TruckID    int
	DepartAt   domain.TimeOfDay
	ReturnAt   domain.TimeOfDay
	Elapsed    time.Duration
	Distance   float64
	PackageIDs []int
}

// TotalDistance is the miles driven by all trucks.
func (s *Simulation) TotalDistance() float64 {
	total := 0.0
	for _, t := range s.Trucks {
		total += t.Odometer
	}
	return total
}

// Package returns the recorded package, or false for an unknown ID.
func (s *Simulation) Package(id int) (*domain.Package, bool) {
	return s.Store.Search(id)
}

// ProjectPackage returns the status of a single package at time t.
func (s *Simulation) ProjectPackage(id int, t domain.TimeOfDay) (PackageStatus, error) {
	pkg, ok := s.Store.Search(id)
	if !ok {
		return PackageStatus{}, fmt.Errorf("project package: package %d: %w", id, domain.ErrPackageNotFound)
	}
	return s.project(pkg, t), nil
}

// ProjectAll returns the status of every package at time t, ordered by ID.
func (s *Simulation) ProjectAll(t domain.TimeOfDay) []PackageStatus {
	keys := s.Store.Keys()
	out := make([]PackageStatus, 0, len(keys))
	for _, id := range keys {
		pkg, _ := s.Store.Search(id)
		out = append(out, s.project(pkg, t))
	}
	return out
}

// Final returns every package as recorded at the end of the run, ordered by ID.
func (s *Simulation) Final() []PackageStatus {
	keys := s.Store.Keys()
	out := make([]PackageStatus, 0, len(keys))
	for _, id := range keys {
		pkg, _ := s.Store.Search(id)
		out = append(out, s.view(pkg, pkg.Status))
	}
	return out
}

// TruckSummaries reports departure, return, elapsed time and distance per truck.
func (s *Simulation) TruckSummaries() []TruckSummary {
	out := make([]TruckSummary, 0, len(s.Plans))
	for _, p := range s.Plans {
		out = append(out, TruckSummary{
			TruckID:    p.TruckID,
			DepartAt:   p.DepartAt,
			ReturnAt:   p.ReturnAt,
			Elapsed:    p.TotalDuration,
			Distance:   p.TotalDistance,
			PackageIDs: p.PackageIDs(),
		})
	}
	return out
}

func (s *Simulation) project(pkg *domain.Package, t domain.TimeOfDay) PackageStatus {
	status := ProjectStatus(pkg, t, s.delay)
	if s.sink != nil {
		s.sink.RecordProjection(status)
	}
	return s.view(pkg, status)
}

func (s *Simulation) view(pkg *domain.Package, status domain.Status) PackageStatus {
	v := PackageStatus{Package: *pkg}
	v.Status = status
	if s.Partition != nil {
		v.TruckID, _ = s.Partition.TruckOf(pkg.PackageID)
	}
	return v
}
