package domain

import (
	"fmt"
	"slices"
)

// TruckManifest lists the packages statically assigned to one truck.
type TruckManifest struct {
	TruckID    int
	PackageIDs []int
}

// Partition is the externally supplied assignment of packages to trucks.
// Each package belongs to exactly one truck for a whole run.
type Partition struct {
	manifests []TruckManifest
	truckOf   map[int]int
}

// NewPartition validates that manifests are disjoint and builds the
// package -> truck index.
func NewPartition(manifests []TruckManifest) (*Partition, error) {
	p := &Partition{
		manifests: make([]TruckManifest, 0, len(manifests)),
		truckOf:   make(map[int]int),
	}

	seenTrucks := make(map[int]struct{}, len(manifests))
	for _, m := range manifests {
		if m.TruckID <= 0 {
			return nil, fmt.Errorf("new partition: %w: truck id must be positive, got %d", ErrInvalidPartition, m.TruckID)
		}
		if _, ok := seenTrucks[m.TruckID]; ok {
			return nil, fmt.Errorf("new partition: %w: truck %d listed twice", ErrInvalidPartition, m.TruckID)
		}
		seenTrucks[m.TruckID] = struct{}{}

		for _, id := range m.PackageIDs {
			if other, ok := p.truckOf[id]; ok {
				return nil, fmt.Errorf(
					"new partition: %w: package %d assigned to trucks %d and %d",
					ErrInvalidPartition, id, other, m.TruckID,
				)
			}
			p.truckOf[id] = m.TruckID
		}

		p.manifests = append(p.manifests, TruckManifest{
			TruckID:    m.TruckID,
			PackageIDs: slices.Clone(m.PackageIDs),
		})
	}

	return p, nil
}

// TruckOf returns the truck carrying the package.
func (p *Partition) TruckOf(packageID int) (int, bool) {
	id, ok := p.truckOf[packageID]
	return id, ok
}

// Manifest returns the package IDs of a truck in loading order.
func (p *Partition) Manifest(truckID int) ([]int, bool) {
	for _, m := range p.manifests {
		if m.TruckID == truckID {
			return slices.Clone(m.PackageIDs), true
		}
	}
	return nil, false
}

func (p *Partition) Manifests() []TruckManifest {
	out := make([]TruckManifest, 0, len(p.manifests))
	for _, m := range p.manifests {
		out = append(out, TruckManifest{TruckID: m.TruckID, PackageIDs: slices.Clone(m.PackageIDs)})
	}
	return out
}

// Len is the number of packages covered by the partition.
func (p *Partition) Len() int { return len(p.truckOf) }
