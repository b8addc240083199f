package domain

import (
	"errors"
	"testing"
	"time"
)

func TestTruckDepartStampsLoadTime(t *testing.T) {
	// build test data
	pkg1 := NewPackage(1, Destination{Address: "A"}, "EOD", 1, "", At(8, 0))
	pkg2 := NewPackage(2, Destination{Address: "B"}, "EOD", 1, "", At(8, 0))
	pkg3 := NewPackage(3, Destination{Address: "C"}, "EOD", 1, "", At(8, 0))

	truck := NewTruck(2, 3, "HUB")
	if err := truck.LoadMultiple([]*Package{pkg1, pkg2, pkg3}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	departAt := At(9, 5)

	// call the method under test
	truck.Depart(departAt)

	// verify behavior
	for _, pkg := range truck.Packages {
		if pkg.LoadedAt != departAt {
			t.Errorf("package %d LoadedAt = %v, want %v", pkg.PackageID, pkg.LoadedAt, departAt)
		}
		if pkg.DeliveredAt != departAt {
			t.Errorf("package %d DeliveredAt = %v, want %v", pkg.PackageID, pkg.DeliveredAt, departAt)
		}
		if pkg.Status != StatusAtDepot {
			t.Errorf("package %d Status = %v, want %v", pkg.PackageID, pkg.Status, StatusAtDepot)
		}
	}

	if truck.Clock != departAt {
		t.Errorf("truck clock = %v, want %v", truck.Clock, departAt)
	}
	if truck.Elapsed() != 0 {
		t.Errorf("elapsed = %v, want 0", truck.Elapsed())
	}
}

func TestTruckLoadRespectsCapacity(t *testing.T) {
	truck := NewTruck(1, 2, "HUB")
	for i := 1; i <= 2; i++ {
		if err := truck.Load(NewPackage(i, Destination{Address: "A"}, "EOD", 1, "", At(8, 0))); err != nil {
			t.Fatalf("load package %d: %v", i, err)
		}
	}

	err := truck.Load(NewPackage(3, Destination{Address: "A"}, "EOD", 1, "", At(8, 0)))
	if !errors.Is(err, ErrTruckFull) {
		t.Fatalf("err = %v, want ErrTruckFull", err)
	}
	if len(truck.PackageIDs) != 2 {
		t.Fatalf("manifest = %v, want 2 ids", truck.PackageIDs)
	}
}

func TestTruckUnloadKeepsManifest(t *testing.T) {
	truck := NewTruck(1, 0, "HUB")
	if truck.Capacity != DefaultTruckCapacity {
		t.Fatalf("capacity = %d, want %d", truck.Capacity, DefaultTruckCapacity)
	}

	for i := 1; i <= 3; i++ {
		if err := truck.Load(NewPackage(i, Destination{Address: "A"}, "EOD", 1, "", At(8, 0))); err != nil {
			t.Fatalf("load: %v", err)
		}
	}

	got := truck.Unload(1)
	if got.PackageID != 2 {
		t.Fatalf("unloaded package %d, want 2", got.PackageID)
	}
	if len(truck.Packages) != 2 || truck.Packages[0].PackageID != 1 || truck.Packages[1].PackageID != 3 {
		t.Fatalf("remaining order broken: %v", truck.Packages)
	}
	if len(truck.PackageIDs) != 3 {
		t.Fatalf("manifest shrank: %v", truck.PackageIDs)
	}

	truck.Clock = truck.Clock.Add(90 * time.Minute)
	if truck.Elapsed() != 90*time.Minute {
		t.Fatalf("elapsed = %v", truck.Elapsed())
	}
}

func TestPackageMarkDeliveredRejectsEarlyTime(t *testing.T) {
	pkg := NewPackage(1, Destination{Address: "A"}, "EOD", 1, "", At(9, 5))

	if err := pkg.MarkDelivered(At(9, 0)); err == nil {
		t.Fatal("expected error for delivery before load time")
	}
	if pkg.Status != StatusAtDepot {
		t.Fatalf("status changed on rejected delivery: %v", pkg.Status)
	}

	if err := pkg.MarkDelivered(At(9, 30)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pkg.Status != StatusDelivered || pkg.DeliveredAt != At(9, 30) {
		t.Fatalf("package = %+v", pkg)
	}
}
