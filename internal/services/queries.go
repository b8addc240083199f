package services

import (
	"context"
	"dispatch-simulation-service/internal/domain"
	"fmt"

	"github.com/google/uuid"
)

// Report is the end-of-day summary: every truck trip and every package
// as delivered.
type Report struct {
	RunID         uuid.UUID
	Trucks        []TruckSummary
	TotalDistance float64
	Packages      []PackageStatus
}

// Report runs the day with every correction known.
func (s *Simulator) Report(ctx context.Context) (*Report, error) {
	sim, err := s.Run(ctx, EndOfDay())
	if err != nil {
		return nil, fmt.Errorf("report: %w", err)
	}
	return &Report{
		RunID:         sim.RunID,
		Trucks:        sim.TruckSummaries(),
		TotalDistance: sim.TotalDistance(),
		Packages:      sim.Final(),
	}, nil
}

// StatusAt runs the day as known at t and projects every package at t.
func (s *Simulator) StatusAt(ctx context.Context, t domain.TimeOfDay) ([]PackageStatus, error) {
	sim, err := s.Run(ctx, AsOf(t))
	if err != nil {
		return nil, fmt.Errorf("status at %s: %w", t, err)
	}
	return sim.ProjectAll(t), nil
}

// PackageAt runs the day as known at t and projects one package at t.
func (s *Simulator) PackageAt(ctx context.Context, id int, t domain.TimeOfDay) (PackageStatus, error) {
	sim, err := s.Run(ctx, AsOf(t))
	if err != nil {
		return PackageStatus{}, fmt.Errorf("package %d at %s: %w", id, t, err)
	}
	return sim.ProjectPackage(id, t)
}

// PackageFinal runs the day with every correction known and returns one
// package as delivered.
func (s *Simulator) PackageFinal(ctx context.Context, id int) (PackageStatus, error) {
	sim, err := s.Run(ctx, EndOfDay())
	if err != nil {
		return PackageStatus{}, fmt.Errorf("package %d: %w", id, err)
	}
	pkg, ok := sim.Package(id)
	if !ok {
		return PackageStatus{}, fmt.Errorf("package %d: %w", id, domain.ErrPackageNotFound)
	}
	return sim.view(pkg, pkg.Status), nil
}
