package services

import (
	"dispatch-simulation-service/internal/domain"
	"fmt"
	"strings"
)

// DelayRule marks packages whose notes say they reach the depot late.
type DelayRule struct {
	NotePrefix string
	ArrivesAt  domain.TimeOfDay
}

func DefaultDelayRule() DelayRule {
	return DelayRule{NotePrefix: "Delayed on flight", ArrivesAt: domain.At(9, 5)}
}

// Applies reports whether the package carries the delay marker.
func (r DelayRule) Applies(pkg *domain.Package) bool {
	return r.NotePrefix != "" && strings.HasPrefix(pkg.Notes, r.NotePrefix)
}

// ProjectStatus derives the status of a package at time t from its
// recorded timeline. It never mutates the package.
func ProjectStatus(pkg *domain.Package, t domain.TimeOfDay, rule DelayRule) domain.Status {
	switch {
	case rule.Applies(pkg) && t.Before(rule.ArrivesAt):
		return domain.StatusDelayed
	case !t.After(pkg.LoadedAt):
		return domain.StatusAtDepot
	case t.Before(pkg.DeliveredAt):
		return domain.StatusEnRoute
	default:
		return domain.StatusDelivered
	}
}

// PackageStatus is a read-only view of a package record at some time,
// with the truck carrying it.
type PackageStatus struct {
	domain.Package
	TruckID int
}

// Describe renders the status with its truck, as shown to operators.
func (s PackageStatus) Describe() string {
	switch s.Status {
	case domain.StatusDelivered:
		return fmt.Sprintf("delivered by truck %d at %s", s.TruckID, s.DeliveredAt)
	case domain.StatusEnRoute:
		return fmt.Sprintf("en route on truck %d", s.TruckID)
	case domain.StatusDelayed:
		return fmt.Sprintf("delayed, assigned to truck %d", s.TruckID)
	default:
		return fmt.Sprintf("at depot, loads on truck %d at %s", s.TruckID, s.LoadedAt)
	}
}
