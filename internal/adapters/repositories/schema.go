package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Dialect selects placeholder syntax for the SQL backends.
type Dialect string

const (
	DialectSQLite   Dialect = "sqlite"
	DialectPostgres Dialect = "postgres"
)

func ParseDialect(s string) (Dialect, error) {
	switch Dialect(strings.ToLower(strings.TrimSpace(s))) {
	case DialectSQLite:
		return DialectSQLite, nil
	case DialectPostgres, "pgx", "postgresql":
		return DialectPostgres, nil
	default:
		return "", fmt.Errorf("unknown sql dialect %q", s)
	}
}

// rebind rewrites ? placeholders to $n for postgres.
func (d Dialect) rebind(query string) string {
	if d != DialectPostgres {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Initialize the dataset schema.
func InitSchema(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createPackagesQuery := `
	CREATE TABLE IF NOT EXISTS packages (
		package_id INTEGER PRIMARY KEY,
		address TEXT NOT NULL,
		city TEXT NOT NULL,
		state TEXT NOT NULL,
		zipcode TEXT NOT NULL,
		deadline TEXT NOT NULL,
		weight_kg INTEGER NOT NULL,
		notes TEXT NOT NULL DEFAULT ''
	);
	`

	createLocationsQuery := `
	CREATE TABLE IF NOT EXISTS locations (
		idx INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		address TEXT NOT NULL UNIQUE
	);
	`

	createDistancesQuery := `
	CREATE TABLE IF NOT EXISTS distances (
		from_idx INTEGER NOT NULL,
		to_idx INTEGER NOT NULL,
		miles DOUBLE PRECISION NOT NULL,
		PRIMARY KEY (from_idx, to_idx)
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_distances_to_from
	ON distances(to_idx, from_idx);
	`

	statements := []string{
		createPackagesQuery,
		createLocationsQuery,
		createDistancesQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

// Populate the database with a dataset. Packages are upserted; the
// location list and distance cells are replaced since their indices
// belong to one dataset.
func SeedDataset(ctx context.Context, db *sql.DB, dialect Dialect, seed *DatasetSeed) error {
	if db == nil {
		return errors.New("seed dataset: DB is nil")
	}
	if err := seed.Validate(); err != nil {
		return fmt.Errorf("seed dataset: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed dataset: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, q := range []string{`DELETE FROM distances;`, `DELETE FROM locations;`, `DELETE FROM packages;`} {
		if _, err := tx.ExecContext(ctx, q); err != nil {
			return fmt.Errorf("seed dataset: clear: %w", err)
		}
	}

	pkgStmt, err := tx.PrepareContext(ctx, dialect.rebind(`
	INSERT INTO packages (
		package_id,
		address,
		city,
		state,
		zipcode,
		deadline,
		weight_kg,
		notes
	)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT (package_id) DO UPDATE SET
		address = excluded.address,
		city = excluded.city,
		state = excluded.state,
		zipcode = excluded.zipcode,
		deadline = excluded.deadline,
		weight_kg = excluded.weight_kg,
		notes = excluded.notes;
	`))
	if err != nil {
		return fmt.Errorf("seed dataset: prepare package insert: %w", err)
	}
	defer pkgStmt.Close()

	for _, p := range seed.Packages {
		_, err := pkgStmt.ExecContext(ctx,
			p.PackageID, strings.TrimSpace(p.Address), p.City, p.State, p.Zipcode, p.Deadline, p.WeightKg, p.Notes,
		)
		if err != nil {
			return fmt.Errorf("seed dataset: insert package_id=%d: %w", p.PackageID, err)
		}
	}

	locStmt, err := tx.PrepareContext(ctx, dialect.rebind(`
	INSERT INTO locations (idx, name, address) VALUES (?, ?, ?);
	`))
	if err != nil {
		return fmt.Errorf("seed dataset: prepare location insert: %w", err)
	}
	defer locStmt.Close()

	for i, l := range seed.Locations {
		if _, err := locStmt.ExecContext(ctx, i, l.Name, strings.TrimSpace(l.Address)); err != nil {
			return fmt.Errorf("seed dataset: insert location %d: %w", i, err)
		}
	}

	distStmt, err := tx.PrepareContext(ctx, dialect.rebind(`
	INSERT INTO distances (from_idx, to_idx, miles) VALUES (?, ?, ?);
	`))
	if err != nil {
		return fmt.Errorf("seed dataset: prepare distance insert: %w", err)
	}
	defer distStmt.Close()

	for i, row := range seed.Distances {
		for j, v := range row {
			if v == nil {
				continue
			}
			if _, err := distStmt.ExecContext(ctx, i, j, *v); err != nil {
				return fmt.Errorf("seed dataset: insert distance [%d][%d]: %w", i, j, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed dataset: commit tx: %w", err)
	}

	return nil
}
