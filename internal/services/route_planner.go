package services

import (
	"context"
	"dispatch-simulation-service/internal/domain"
	"dispatch-simulation-service/internal/platform/obs"
	"dispatch-simulation-service/internal/ports"
	"errors"
	"fmt"
	"math"
	"time"
)

// DefaultSpeedMph is the constant average truck speed.
const DefaultSpeedMph = 18.0

// TravelTime converts a leg distance into driving time at a constant speed,
// rounded to the nanosecond.
func TravelTime(miles, speedMph float64) time.Duration {
	return time.Duration(math.Round(miles / speedMph * float64(time.Hour)))
}

// Depart a loaded truck at the given time and drive its route to completion.
func DriveTruckRoute(
	ctx context.Context,
	truck *domain.Truck,
	departAt domain.TimeOfDay,
	oracle ports.DistanceOracle,
	speedMph float64,
	store PackageStore,
) (plan *domain.RoutePlan, err error) {
	if truck == nil {
		return nil, errors.New("drive truck route: truck must be non-nil")
	}
	defer obs.Time(ctx, fmt.Sprintf("drive_truck_%d", truck.TruckID))(&err)

	if truck.StartLocation == "" {
		return nil, fmt.Errorf("drive truck route: truck %d startLocation must be non-empty", truck.TruckID)
	}

	truck.Depart(departAt)

	plan, err = NearestNeighborRoute(ctx, truck, oracle, speedMph, store)
	if err != nil {
		return nil, fmt.Errorf("drive truck route: for truck %d: %w", truck.TruckID, err)
	}

	obs.Logger(ctx).Debug().
		Int("truck_id", truck.TruckID).
		Stringer("depart_at", plan.DepartAt).
		Stringer("return_at", plan.ReturnAt).
		Float64("miles", plan.TotalDistance).
		Int("stops", len(plan.Stops)).
		Msg("truck route completed")

	return plan, nil
}
