package distance

import (
	"dispatch-simulation-service/internal/domain"
	"fmt"
)

type MockPair struct {
	From, To string
	Miles    float64
}

// MockOracle answers from a fixed pair list. A pair given in one direction
// also answers the reverse lookup.
type MockOracle struct {
	m     map[string]float64
	known map[string]struct{}
}

func NewMockOracle(pairs []MockPair) *MockOracle {
	m := make(map[string]float64, len(pairs))
	known := make(map[string]struct{})
	for _, p := range pairs {
		m[p.From+"|"+p.To] = p.Miles
		known[p.From] = struct{}{}
		known[p.To] = struct{}{}
	}
	return &MockOracle{m: m, known: known}
}

func (o *MockOracle) Distance(from, to string) (float64, error) {
	for _, a := range []string{from, to} {
		if _, ok := o.known[a]; !ok {
			return 0, fmt.Errorf("mock distance: %w: %q", domain.ErrUnknownLocation, a)
		}
	}
	if from == to {
		return 0, nil
	}

	if d, ok := o.m[from+"|"+to]; ok {
		return d, nil
	}
	if d, ok := o.m[to+"|"+from]; ok {
		return d, nil
	}

	return 0, fmt.Errorf("mock distance: %w: %q -> %q", domain.ErrMissingDistance, from, to)
}
