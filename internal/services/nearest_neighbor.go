package services

import (
	"context"
	"dispatch-simulation-service/internal/domain"
	"dispatch-simulation-service/internal/ports"
	"errors"
	"fmt"
	"math"
)

// PackageStore receives package records as they are delivered.
type PackageStore interface {
	Insert(id int, pkg *domain.Package) bool
}

// Drive a truck's route using a greedy nearest-neighbor algorithm.
//
// At each step the undelivered package closest to the truck's current
// position is delivered next; the first package encountered wins a tie.
// The truck's clock and odometer advance with every leg and the delivered
// record is written back to the store. The route ends at the last delivery,
// there is no return leg to the depot.
func NearestNeighborRoute(
	ctx context.Context,
	truck *domain.Truck,
	oracle ports.DistanceOracle,
	speedMph float64,
	store PackageStore,
) (*domain.RoutePlan, error) {
	if truck.StartLocation == "" {
		return nil, errors.New("nearest neighbor: startLocation must be non-empty")
	}
	if speedMph <= 0 {
		return nil, fmt.Errorf("nearest neighbor: speed must be positive, got %v", speedMph)
	}

	plan := &domain.RoutePlan{
		TruckID:  truck.TruckID,
		DepartAt: truck.Clock,
		ReturnAt: truck.Clock,
		Stops:    make([]domain.RouteStop, 0, len(truck.Packages)),
	}

	currentLocation := truck.StartLocation

	for !truck.Empty() {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("nearest neighbor: truck %d: %w", truck.TruckID, err)
		}

		best := -1
		minDistance := math.Inf(1)

		// Select next stop by minimum distance (greedy step).
		for i, pkg := range truck.Packages {
			d, err := oracle.Distance(currentLocation, pkg.Address)
			if err != nil {
				return nil, fmt.Errorf(
					"nearest neighbor: truck %d: leg %q -> %q (package %d): %w",
					truck.TruckID, currentLocation, pkg.Address, pkg.PackageID, err,
				)
			}
			if d < minDistance {
				minDistance = d
				best = i
			}
		}

		if best < 0 {
			return nil, fmt.Errorf(
				"nearest neighbor: truck %d: no finite leg from %q: %w",
				truck.TruckID, currentLocation, domain.ErrMissingDistance,
			)
		}

		pkg := truck.Unload(best)
		truck.Odometer += minDistance
		truck.Clock = truck.Clock.Add(TravelTime(minDistance, speedMph))

		if err := pkg.MarkDelivered(truck.Clock); err != nil {
			return nil, fmt.Errorf("nearest neighbor: truck %d: %w", truck.TruckID, err)
		}
		store.Insert(pkg.PackageID, pkg)

		plan.Stops = append(plan.Stops, domain.RouteStop{
			PackageID:   pkg.PackageID,
			Destination: pkg.Address,
			Distance:    minDistance,
			ArriveAt:    truck.Clock,
		})
		currentLocation = pkg.Address
	}

	plan.ReturnAt = truck.Clock
	plan.TotalDistance = truck.Odometer
	plan.TotalDuration = truck.Elapsed()

	return plan, nil
}
