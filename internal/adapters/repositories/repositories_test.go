package repositories

import (
	"context"
	"dispatch-simulation-service/internal/domain"
	"dispatch-simulation-service/internal/platform/db"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const seedPath = "../../../data/seeds/dataset.json"

func f(v float64) *float64 { return &v }

func smallSeed() *DatasetSeed {
	return &DatasetSeed{
		Packages: []PackageSeed{
			{PackageID: 2, Address: "B St", City: "Town", State: "UT", Zipcode: "84000", Deadline: "EOD", WeightKg: 3},
			{PackageID: 1, Address: " A St ", City: "Town", State: "UT", Zipcode: "84001", Deadline: "10:30 AM", WeightKg: 5, Notes: "fragile"},
		},
		Locations: []LocationSeed{
			{Name: "Depot", Address: "HUB"},
			{Name: "A", Address: "A St"},
			{Name: "B", Address: "B St"},
		},
		Distances: [][]*float64{
			{f(0)},
			{f(1.5), f(0)},
			{nil, f(2.5), f(0)},
		},
	}
}

func TestParseDatasetRejectsDuplicatePackages(t *testing.T) {
	in := `{"packages":[{"package_id":1,"address":"A"},{"package_id":1,"address":"B"}],"locations":[{"address":"A"}]}`
	_, err := ParseDataset(strings.NewReader(in))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "listed twice")
}

func TestParseDatasetRejectsOversizedRows(t *testing.T) {
	in := `{"packages":[],"locations":[{"address":"A"}],"distances":[[0,1]]}`
	_, err := ParseDataset(strings.NewReader(in))
	require.Error(t, err)
}

func TestLoadDatasetFileBundledSample(t *testing.T) {
	seed, err := LoadDatasetFile(seedPath)
	require.NoError(t, err)

	assert.Len(t, seed.Packages, 40)
	assert.Len(t, seed.Locations, 27)
	assert.Equal(t, "4001 South 700 East", seed.Locations[0].Address)
}

func TestMemoryRepositoryOrdersPackages(t *testing.T) {
	repo := NewMemoryRepository(smallSeed())

	pkgs, err := repo.ListPackages(context.Background())
	require.NoError(t, err)
	require.Len(t, pkgs, 2)
	assert.Equal(t, 1, pkgs[0].PackageID)
	assert.Equal(t, "A St", pkgs[0].Address)
	assert.Equal(t, domain.StatusAtDepot, pkgs[0].Status)
	assert.Equal(t, domain.At(8, 0), pkgs[0].LoadedAt)

	table, err := repo.LoadDistanceTable(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"HUB", "A St", "B St"}, table.Addresses())
	assert.Nil(t, table.Cells[2][0])
}

func TestSQLRepositoryRoundTripSQLite(t *testing.T) {
	ctx := context.Background()
	conn, err := db.OpenSQLite(filepath.Join(t.TempDir(), "dataset.db"))
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, InitSchema(ctx, conn))
	require.NoError(t, InitSchema(ctx, conn), "schema creation is idempotent")
	bigger := smallSeed()
	bigger.Packages = append(bigger.Packages, PackageSeed{PackageID: 3, Address: "B St", City: "Town", State: "UT", Zipcode: "84000", Deadline: "EOD", WeightKg: 1})
	require.NoError(t, SeedDataset(ctx, conn, DialectSQLite, bigger))
	require.NoError(t, SeedDataset(ctx, conn, DialectSQLite, smallSeed()), "reseeding replaces the dataset")

	repo := NewSQLRepository(conn, DialectSQLite)

	pkgs, err := repo.ListPackages(ctx)
	require.NoError(t, err)
	require.Len(t, pkgs, 2, "packages dropped from the dataset are removed")
	assert.Equal(t, 1, pkgs[0].PackageID)
	assert.Equal(t, "A St", pkgs[0].Address)
	assert.Equal(t, "fragile", pkgs[0].Notes)
	assert.Equal(t, 5, pkgs[0].WeightKg)

	table, err := repo.LoadDistanceTable(ctx)
	require.NoError(t, err)
	require.Len(t, table.Locations, 3)
	assert.Equal(t, "Depot", table.Locations[0].Name)
	require.NotNil(t, table.Cells[1][0])
	assert.Equal(t, 1.5, *table.Cells[1][0])
	assert.Nil(t, table.Cells[2][0])
	assert.Nil(t, table.Cells[0][2])
}

func TestRebindPostgres(t *testing.T) {
	got := DialectPostgres.rebind("INSERT INTO t (a, b) VALUES (?, ?)")
	assert.Equal(t, "INSERT INTO t (a, b) VALUES ($1, $2)", got)
	assert.Equal(t, "SELECT ?", DialectSQLite.rebind("SELECT ?"))
}

func TestParseDialect(t *testing.T) {
	d, err := ParseDialect("PGX")
	require.NoError(t, err)
	assert.Equal(t, DialectPostgres, d)

	_, err = ParseDialect("mysql")
	assert.Error(t, err)
}
