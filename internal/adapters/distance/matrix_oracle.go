package distance

import (
	"dispatch-simulation-service/internal/domain"
	"errors"
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// MatrixOracle implements DistanceOracle over a precomputed distance matrix.
//
// Addresses resolve to matrix indices through the ordered location list.
// The source data may be upper or lower triangular: empty cells are kept
// as NaN and a lookup falls back to the mirrored cell.
//
// The oracle is read-only after construction and safe for concurrent use.
type MatrixOracle struct {
	locations []domain.Location
	index     map[string]int
	m         *mat.Dense
}

func NewMatrixOracle(table domain.DistanceTable) (*MatrixOracle, error) {
	n := len(table.Locations)
	if n == 0 {
		return nil, errors.New("new matrix oracle: location list is empty")
	}
	if len(table.Cells) > n {
		return nil, fmt.Errorf("new matrix oracle: %d matrix rows for %d locations", len(table.Cells), n)
	}

	index := make(map[string]int, n)
	for i, loc := range table.Locations {
		key := normalize(loc.Address)
		if key == "" {
			return nil, fmt.Errorf("new matrix oracle: location %d has empty address", i)
		}
		if _, dup := index[key]; dup {
			return nil, fmt.Errorf("new matrix oracle: duplicate location address %q", loc.Address)
		}
		index[key] = i
	}

	m := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			m.Set(i, j, math.NaN())
		}
	}

	for i, row := range table.Cells {
		if len(row) > n {
			return nil, fmt.Errorf("new matrix oracle: row %d has %d cells for %d locations", i, len(row), n)
		}
		for j, cell := range row {
			if cell == nil {
				continue
			}
			if *cell < 0 || math.IsNaN(*cell) || math.IsInf(*cell, 0) {
				return nil, fmt.Errorf("new matrix oracle: invalid distance %v at [%d][%d]", *cell, i, j)
			}
			m.Set(i, j, *cell)
		}
	}

	return &MatrixOracle{
		locations: append([]domain.Location(nil), table.Locations...),
		index:     index,
		m:         m,
	}, nil
}

// normalize ensures consistent lookups by collapsing whitespace.
func normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func (o *MatrixOracle) indexOf(address string) (int, error) {
	i, ok := o.index[normalize(address)]
	if !ok {
		return 0, fmt.Errorf("%w: %q", domain.ErrUnknownLocation, address)
	}
	return i, nil
}

// Distance returns the miles between two addresses. The direct cell is
// preferred; if it is empty the mirrored cell is used.
func (o *MatrixOracle) Distance(from, to string) (float64, error) {
	i, err := o.indexOf(from)
	if err != nil {
		return 0, fmt.Errorf("matrix distance: from: %w", err)
	}
	j, err := o.indexOf(to)
	if err != nil {
		return 0, fmt.Errorf("matrix distance: to: %w", err)
	}

	d := o.m.At(i, j)
	if math.IsNaN(d) {
		d = o.m.At(j, i)
	}
	if math.IsNaN(d) {
		if i == j {
			return 0, nil
		}
		return 0, fmt.Errorf("matrix distance: %w: %q -> %q", domain.ErrMissingDistance, from, to)
	}

	return d, nil
}

// Locations returns the ordered location list.
func (o *MatrixOracle) Locations() []domain.Location {
	return append([]domain.Location(nil), o.locations...)
}

// Depot returns the first location, which by convention is the hub.
func (o *MatrixOracle) Depot() domain.Location {
	return o.locations[0]
}
