package domain

import "time"

// Represents a single delivery in a truck route.
// A RouteStop corresponds to arriving at the destination of one package
// after driving Distance miles from the previous stop.
type RouteStop struct {
	PackageID   int
	Destination string
	Distance    float64
	ArriveAt    TimeOfDay
}

// Represents the driven delivery route of a single truck.
// A RoutePlan is the output of the dispatch loop and records the ordered
// stops along with aggregate distance and duration.
type RoutePlan struct {
	TruckID       int
	DepartAt      TimeOfDay
	ReturnAt      TimeOfDay
	Stops         []RouteStop
	TotalDistance float64
	TotalDuration time.Duration
}

// PackageIDs returns the delivered package IDs in delivery order.
func (p *RoutePlan) PackageIDs() []int {
	ids := make([]int, 0, len(p.Stops))
	for _, s := range p.Stops {
		ids = append(ids, s.PackageID)
	}
	return ids
}
