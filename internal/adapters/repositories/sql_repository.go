package repositories

import (
	"context"
	"database/sql"
	"dispatch-simulation-service/internal/domain"
	"errors"
	"fmt"
)

// SQL-backed implementation of the PackageRepository and
// DistanceTableRepository ports. Works against SQLite and Postgres.
type SQLRepository struct {
	DB      *sql.DB
	Dialect Dialect
}

func NewSQLRepository(db *sql.DB, dialect Dialect) *SQLRepository {
	return &SQLRepository{DB: db, Dialect: dialect}
}

// Return all packages stored in the database.
func (s *SQLRepository) ListPackages(ctx context.Context) ([]*domain.Package, error) {
	if s.DB == nil {
		return nil, errors.New("sql package repository: DB is nil")
	}

	query := `
	SELECT
		package_id,
		address,
		city,
		state,
		zipcode,
		deadline,
		weight_kg,
		notes
	FROM packages
	ORDER BY package_id;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list packages: query packages table: %w", err)
	}
	defer rows.Close()

	packages := make([]*domain.Package, 0, 64)
	for rows.Next() {
		var p PackageSeed
		err := rows.Scan(&p.PackageID, &p.Address, &p.City, &p.State, &p.Zipcode, &p.Deadline, &p.WeightKg, &p.Notes)
		if err != nil {
			return nil, fmt.Errorf("list packages: scan row: %w", err)
		}
		packages = append(packages, p.toDomain(domain.At(8, 0)))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list packages: row iteration: %w", err)
	}

	return packages, nil
}

// Rebuild the distance table from the locations and distances tables.
func (s *SQLRepository) LoadDistanceTable(ctx context.Context) (domain.DistanceTable, error) {
	if s.DB == nil {
		return domain.DistanceTable{}, errors.New("sql distance repository: DB is nil")
	}

	rows, err := s.DB.QueryContext(ctx, `
	SELECT
		idx,
		name,
		address
	FROM locations
	ORDER BY idx;
	`)
	if err != nil {
		return domain.DistanceTable{}, fmt.Errorf("load distance table: query locations table: %w", err)
	}
	defer rows.Close()

	var locations []domain.Location
	for rows.Next() {
		var idx int
		var l domain.Location
		if err := rows.Scan(&idx, &l.Name, &l.Address); err != nil {
			return domain.DistanceTable{}, fmt.Errorf("load distance table: scan location: %w", err)
		}
		if idx != len(locations) {
			return domain.DistanceTable{}, fmt.Errorf("load distance table: location index %d out of sequence", idx)
		}
		locations = append(locations, l)
	}
	if err := rows.Err(); err != nil {
		return domain.DistanceTable{}, fmt.Errorf("load distance table: location iteration: %w", err)
	}

	n := len(locations)
	cells := make([][]*float64, n)
	for i := range cells {
		cells[i] = make([]*float64, n)
	}

	drows, err := s.DB.QueryContext(ctx, `
	SELECT
		from_idx,
		to_idx,
		miles
	FROM distances;
	`)
	if err != nil {
		return domain.DistanceTable{}, fmt.Errorf("load distance table: query distances table: %w", err)
	}
	defer drows.Close()

	for drows.Next() {
		var i, j int
		var miles float64
		if err := drows.Scan(&i, &j, &miles); err != nil {
			return domain.DistanceTable{}, fmt.Errorf("load distance table: scan distance: %w", err)
		}
		if i < 0 || i >= n || j < 0 || j >= n {
			return domain.DistanceTable{}, fmt.Errorf("load distance table: cell [%d][%d] outside %d locations", i, j, n)
		}
		cells[i][j] = &miles
	}
	if err := drows.Err(); err != nil {
		return domain.DistanceTable{}, fmt.Errorf("load distance table: distance iteration: %w", err)
	}

	return domain.DistanceTable{Locations: locations, Cells: cells}, nil
}
