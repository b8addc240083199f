package domain

// DistanceTable is the precomputed distance data between depot and delivery
// addresses. Cells[i][j] holds the distance between Locations[i] and
// Locations[j]; a nil cell or a short row means the value is only stored
// in the mirrored cell.
type DistanceTable struct {
	Locations []Location
	Cells     [][]*float64
}

// Location is a named stop; Address is the key packages refer to.
type Location struct {
	Name    string
	Address string
}

// Addresses returns the ordered address list used to index the matrix.
func (t DistanceTable) Addresses() []string {
	out := make([]string, 0, len(t.Locations))
	for _, l := range t.Locations {
		out = append(out, l.Address)
	}
	return out
}
