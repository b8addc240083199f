package services

import (
	"dispatch-simulation-service/internal/domain"
	"dispatch-simulation-service/internal/store"
	"fmt"
)

// LoadTrucks builds one truck per partition manifest and loads the
// package records from the store in manifest order.
//
// Assignment is static: every package in the store must belong to exactly
// one manifest, and a manifest larger than the truck capacity fails fast
// rather than rebalancing.
func LoadTrucks(
	packages *store.Table[*domain.Package],
	partition *domain.Partition,
	hub string,
	capacity int,
) ([]*domain.Truck, error) {
	manifests := partition.Manifests()
	trucks := make([]*domain.Truck, 0, len(manifests))

	for _, m := range manifests {
		pkgs := make([]*domain.Package, 0, len(m.PackageIDs))
		for _, id := range m.PackageIDs {
			pkg, ok := packages.Search(id)
			if !ok {
				return nil, fmt.Errorf("load trucks: truck %d: package %d: %w", m.TruckID, id, domain.ErrPackageNotFound)
			}
			pkgs = append(pkgs, pkg)
		}

		truck := domain.NewTruck(m.TruckID, capacity, hub)
		if err := truck.LoadMultiple(pkgs); err != nil {
			return nil, fmt.Errorf("load trucks: %w", err)
		}
		trucks = append(trucks, truck)
	}

	for _, id := range packages.Keys() {
		if _, ok := partition.TruckOf(id); !ok {
			return nil, fmt.Errorf("load trucks: %w: package %d is not assigned to a truck", domain.ErrInvalidPartition, id)
		}
	}

	return trucks, nil
}
