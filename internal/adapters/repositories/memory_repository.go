package repositories

import (
	"context"
	"dispatch-simulation-service/internal/domain"
	"errors"
	"slices"
)

// In-memory implementation of the PackageRepository and
// DistanceTableRepository ports, backed by a parsed dataset.
type MemoryRepository struct {
	seed     *DatasetSeed
	loadTime domain.TimeOfDay
}

func NewMemoryRepository(seed *DatasetSeed) *MemoryRepository {
	return &MemoryRepository{seed: seed, loadTime: domain.At(8, 0)}
}

// Return fresh package records ordered by id.
func (m *MemoryRepository) ListPackages(ctx context.Context) ([]*domain.Package, error) {
	if m.seed == nil {
		return nil, errors.New("memory repository: dataset is nil")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	pkgs := m.seed.DomainPackages(m.loadTime)
	slices.SortFunc(pkgs, func(a, b *domain.Package) int { return a.PackageID - b.PackageID })
	return pkgs, nil
}

func (m *MemoryRepository) LoadDistanceTable(ctx context.Context) (domain.DistanceTable, error) {
	if m.seed == nil {
		return domain.DistanceTable{}, errors.New("memory repository: dataset is nil")
	}
	if err := ctx.Err(); err != nil {
		return domain.DistanceTable{}, err
	}
	return m.seed.DistanceTable(), nil
}
