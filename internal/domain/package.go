package domain

import "fmt"

// Status is the delivery state of a package at some point of the service day.
type Status int

const (
	StatusAtDepot Status = iota
	StatusDelayed
	StatusEnRoute
	StatusDelivered
)

var statusNames = [...]string{
	StatusAtDepot:   "at depot",
	StatusDelayed:   "delayed",
	StatusEnRoute:   "en route",
	StatusDelivered: "delivered",
}

func (s Status) String() string {
	if s < 0 || int(s) >= len(statusNames) {
		return fmt.Sprintf("status(%d)", int(s))
	}
	return statusNames[s]
}

// Destination is the postal target of a package.
type Destination struct {
	Address string
	City    string
	State   string
	Zipcode string
}

// Represents a single delivery unit handled by the system.
// A Package has a unique identifier and a single destination.
// Load and delivery times are populated during simulation while
// its truck runs its route.
type Package struct {
	PackageID int
	Destination
	Deadline string
	WeightKg int
	Notes    string

	Status      Status
	LoadedAt    TimeOfDay
	DeliveredAt TimeOfDay
}

// NewPackage creates a package waiting at the depot, loaded at loadTime.
func NewPackage(id int, dest Destination, deadline string, weightKg int, notes string, loadTime TimeOfDay) *Package {
	return &Package{
		PackageID:   id,
		Destination: dest,
		Deadline:    deadline,
		WeightKg:    weightKg,
		Notes:       notes,
		Status:      StatusAtDepot,
		LoadedAt:    loadTime,
		DeliveredAt: loadTime,
	}
}

// Clone returns an independent copy of the package.
func (p *Package) Clone() *Package {
	c := *p
	return &c
}

// Load resets the package timeline so that it departs the depot at the given time.
func (p *Package) Load(at TimeOfDay) {
	p.Status = StatusAtDepot
	p.LoadedAt = at
	p.DeliveredAt = at
}

// MarkDelivered records delivery at the given time. A delivery
// before the package was loaded is rejected.
func (p *Package) MarkDelivered(at TimeOfDay) error {
	if at < p.LoadedAt {
		return fmt.Errorf(
			"mark delivered: package %d delivered at %s before load time %s",
			p.PackageID, at, p.LoadedAt,
		)
	}
	p.DeliveredAt = at
	p.Status = StatusDelivered
	return nil
}
