package ports

// Contract for looking up travel distance between two known addresses.
type DistanceOracle interface {
	// Return the distance in miles between two addresses, in either order.
	Distance(from string, to string) (float64, error)
}
