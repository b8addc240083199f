package services

import (
	"dispatch-simulation-service/internal/domain"
	"dispatch-simulation-service/internal/store"
	"errors"
	"slices"
	"testing"
)

func packageTable(t *testing.T, ids ...int) *store.Table[*domain.Package] {
	t.Helper()
	tbl := store.New[*domain.Package](store.DefaultBuckets)
	for _, id := range ids {
		tbl.Insert(id, domain.NewPackage(id, domain.Destination{Address: "A"}, "EOD", 1, "", domain.At(8, 0)))
	}
	return tbl
}

func TestLoadTrucksManifestOrder(t *testing.T) {
	partition, err := domain.NewPartition([]domain.TruckManifest{
		{TruckID: 1, PackageIDs: []int{3, 1}},
		{TruckID: 2, PackageIDs: []int{2}},
	})
	if err != nil {
		t.Fatalf("partition: %v", err)
	}

	trucks, err := LoadTrucks(packageTable(t, 1, 2, 3), partition, "HUB", 16)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(trucks) != 2 {
		t.Fatalf("got %d trucks, want 2", len(trucks))
	}
	if !slices.Equal(trucks[0].PackageIDs, []int{3, 1}) {
		t.Fatalf("truck 1 manifest = %v, want [3 1]", trucks[0].PackageIDs)
	}
	if trucks[1].StartLocation != "HUB" || len(trucks[1].Packages) != 1 {
		t.Fatalf("truck 2 = %+v", trucks[1])
	}
}

func TestLoadTrucksOverCapacity(t *testing.T) {
	partition, err := domain.NewPartition([]domain.TruckManifest{
		{TruckID: 1, PackageIDs: []int{1, 2, 3}},
	})
	if err != nil {
		t.Fatalf("partition: %v", err)
	}

	_, err = LoadTrucks(packageTable(t, 1, 2, 3), partition, "HUB", 2)
	if !errors.Is(err, domain.ErrTruckFull) {
		t.Fatalf("expected ErrTruckFull, got %v", err)
	}
}

func TestLoadTrucksUnassignedPackage(t *testing.T) {
	partition, err := domain.NewPartition([]domain.TruckManifest{
		{TruckID: 1, PackageIDs: []int{1}},
	})
	if err != nil {
		t.Fatalf("partition: %v", err)
	}

	_, err = LoadTrucks(packageTable(t, 1, 2), partition, "HUB", 16)
	if !errors.Is(err, domain.ErrInvalidPartition) {
		t.Fatalf("expected ErrInvalidPartition, got %v", err)
	}
}
