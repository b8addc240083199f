package ports

import (
	"context"
	"dispatch-simulation-service/internal/domain"
)

// Port: a boundary for retrieving Package entities from a data source.
type PackageRepository interface {
	// Retrieve all packages available for dispatch, ordered by id.
	ListPackages(ctx context.Context) ([]*domain.Package, error)
}

// Port: a boundary for retrieving the precomputed location/distance table.
type DistanceTableRepository interface {
	LoadDistanceTable(ctx context.Context) (domain.DistanceTable, error)
}
