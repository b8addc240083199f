package repositories

import (
	"dispatch-simulation-service/internal/domain"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
)

type PackageSeed struct {
	PackageID int    `json:"package_id"`
	Address   string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
	Zipcode   string `json:"zipcode"`
	Deadline  string `json:"deadline"`
	WeightKg  int    `json:"weight_kg"`
	Notes     string `json:"notes"`
}

type LocationSeed struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

// DatasetSeed is the static input of a service day as stored on disk.
// Distances are ragged rows; a null cell is only stored mirrored.
type DatasetSeed struct {
	Packages  []PackageSeed  `json:"packages"`
	Locations []LocationSeed `json:"locations"`
	Distances [][]*float64   `json:"distances"`
}

// Read and validate a dataset from a JSON file.
func LoadDatasetFile(path string) (*DatasetSeed, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load dataset: open %q: %w", path, err)
	}
	defer f.Close()

	seed, err := ParseDataset(f)
	if err != nil {
		return nil, fmt.Errorf("load dataset %q: %w", path, err)
	}
	return seed, nil
}

func ParseDataset(r io.Reader) (*DatasetSeed, error) {
	var seed DatasetSeed
	if err := json.NewDecoder(r).Decode(&seed); err != nil {
		return nil, fmt.Errorf("parse dataset: %w", err)
	}
	if err := seed.Validate(); err != nil {
		return nil, err
	}
	return &seed, nil
}

func (s *DatasetSeed) Validate() error {
	seen := make(map[int]struct{}, len(s.Packages))
	for i, p := range s.Packages {
		if p.PackageID <= 0 {
			return fmt.Errorf("validate dataset: invalid package_id at index %d: %d", i+1, p.PackageID)
		}
		if _, ok := seen[p.PackageID]; ok {
			return fmt.Errorf("validate dataset: package_id=%d listed twice", p.PackageID)
		}
		seen[p.PackageID] = struct{}{}

		if strings.TrimSpace(p.Address) == "" {
			return fmt.Errorf("validate dataset: package_id=%d: address cannot be empty", p.PackageID)
		}
	}

	if len(s.Locations) == 0 {
		return fmt.Errorf("validate dataset: location list is empty")
	}
	for i, l := range s.Locations {
		if strings.TrimSpace(l.Address) == "" {
			return fmt.Errorf("validate dataset: location at index %d: address cannot be empty", i)
		}
	}

	if len(s.Distances) > len(s.Locations) {
		return fmt.Errorf("validate dataset: %d distance rows for %d locations", len(s.Distances), len(s.Locations))
	}
	for i, row := range s.Distances {
		if len(row) > len(s.Locations) {
			return fmt.Errorf("validate dataset: distance row %d has %d cells for %d locations", i, len(row), len(s.Locations))
		}
	}

	return nil
}

// Build package records waiting at the depot, in dataset order.
func (s *DatasetSeed) DomainPackages(loadTime domain.TimeOfDay) []*domain.Package {
	out := make([]*domain.Package, 0, len(s.Packages))
	for _, p := range s.Packages {
		out = append(out, p.toDomain(loadTime))
	}
	return out
}

func (s *DatasetSeed) DistanceTable() domain.DistanceTable {
	locations := make([]domain.Location, 0, len(s.Locations))
	for _, l := range s.Locations {
		locations = append(locations, domain.Location{Name: l.Name, Address: strings.TrimSpace(l.Address)})
	}

	cells := make([][]*float64, 0, len(s.Distances))
	for _, row := range s.Distances {
		r := make([]*float64, len(row))
		for j, v := range row {
			if v != nil {
				d := *v
				r[j] = &d
			}
		}
		cells = append(cells, r)
	}

	return domain.DistanceTable{Locations: locations, Cells: cells}
}

func (p PackageSeed) toDomain(loadTime domain.TimeOfDay) *domain.Package {
	dest := domain.Destination{
		Address: strings.TrimSpace(p.Address),
		City:    p.City,
		State:   p.State,
		Zipcode: p.Zipcode,
	}
	return domain.NewPackage(p.PackageID, dest, p.Deadline, p.WeightKg, p.Notes, loadTime)
}
