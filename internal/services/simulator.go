package services

import (
	"context"
	"dispatch-simulation-service/internal/domain"
	"dispatch-simulation-service/internal/metrics"
	"dispatch-simulation-service/internal/platform/obs"
	"dispatch-simulation-service/internal/ports"
	"dispatch-simulation-service/internal/store"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
)

// Simulator replays the service day over a fixed dataset. Inputs are read
// only; every run works on its own copy of the package records.
type Simulator struct {
	opts     Options
	packages []*domain.Package
	oracle   ports.DistanceOracle
	sink     metrics.Sink
}

func NewSimulator(opts Options, packages []*domain.Package, oracle ports.DistanceOracle, sink metrics.Sink) (*Simulator, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("new simulator: %w", err)
	}
	if oracle == nil {
		return nil, errors.New("new simulator: distance oracle must be non-nil")
	}
	if sink == nil {
		sink = metrics.NopSink{}
	}

	seen := make(map[int]struct{}, len(packages))
	for _, pkg := range packages {
		if _, ok := seen[pkg.PackageID]; ok {
			return nil, fmt.Errorf("new simulator: package_id=%d listed twice", pkg.PackageID)
		}
		seen[pkg.PackageID] = struct{}{}
	}

	return &Simulator{opts: opts, packages: packages, oracle: oracle, sink: sink}, nil
}

func (s *Simulator) Options() Options { return s.opts }

// Run simulates one service day under the given knowledge of address
// corrections and returns its fully timed delivery history.
func (s *Simulator) Run(ctx context.Context, k Knowledge) (sim *Simulation, err error) {
	defer obs.Time(ctx, "simulate_"+k.Label())(&err)
	start := time.Now()
	defer func() { s.sink.RecordRun(k.Label(), time.Since(start), err) }()

	packages := store.New[*domain.Package](store.DefaultBuckets)
	for _, pkg := range s.packages {
		c := pkg.Clone()
		c.Load(s.opts.DefaultLoadTime)
		packages.Insert(c.PackageID, c)
	}

	if err := ApplyCorrections(packages, s.opts.Corrections, k); err != nil {
		return nil, fmt.Errorf("simulate: %w", err)
	}

	trucks, err := LoadTrucks(packages, s.opts.Partition, s.opts.Depot, s.opts.TruckCapacity)
	if err != nil {
		return nil, fmt.Errorf("simulate: %w", err)
	}

	plans, err := s.dispatch(ctx, trucks, packages)
	if err != nil {
		return nil, fmt.Errorf("simulate: %w", err)
	}

	sim = &Simulation{
		RunID:     uuid.New(),
		Knowledge: k,
		Store:     packages,
		Trucks:    trucks,
		Plans:     plans,
		Partition: s.opts.Partition,
		delay:     s.opts.Delay,
		sink:      s.sink,
	}
	for _, t := range trucks {
		s.sink.RecordTruckDistance(t.TruckID, t.Odometer)
	}

	obs.Logger(ctx).Info().
		Str("run_id", sim.RunID.String()).
		Str("knowledge", k.Label()).
		Float64("total_miles", sim.TotalDistance()).
		Msg("simulation completed")

	return sim, nil
}

// dispatch sends out fixed-departure trucks in schedule order, then hands
// each waiting truck the earliest return clock no other truck has claimed.
// Plans are returned in truck order.
func (s *Simulator) dispatch(ctx context.Context, trucks []*domain.Truck, packages PackageStore) ([]*domain.RoutePlan, error) {
	byID := make(map[int]*domain.Truck, len(trucks))
	for _, t := range trucks {
		byID[t.TruckID] = t
	}

	plans := make(map[int]*domain.RoutePlan, len(trucks))
	var returns []domain.TimeOfDay

	drive := func(t *domain.Truck, at domain.TimeOfDay) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		plan, err := DriveTruckRoute(ctx, t, at, s.oracle, s.opts.SpeedMph, packages)
		if err != nil {
			return err
		}
		plans[t.TruckID] = plan
		i, _ := slices.BinarySearch(returns, plan.ReturnAt)
		returns = slices.Insert(returns, i, plan.ReturnAt)
		return nil
	}

	var waiting []*domain.Truck
	for _, sched := range s.opts.Schedules {
		t := byID[sched.TruckID]
		if sched.WaitForReturn {
			waiting = append(waiting, t)
			continue
		}
		if err := drive(t, sched.DepartAt); err != nil {
			return nil, err
		}
	}

	for _, t := range waiting {
		if len(returns) == 0 {
			return nil, fmt.Errorf("dispatch: truck %d waits for a return but no truck has finished", t.TruckID)
		}
		at := returns[0]
		returns = returns[1:]
		if err := drive(t, at); err != nil {
			return nil, err
		}
	}

	out := make([]*domain.RoutePlan, 0, len(trucks))
	for _, t := range trucks {
		out = append(out, plans[t.TruckID])
	}
	return out, nil
}
