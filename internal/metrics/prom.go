package metrics

import (
	"dispatch-simulation-service/internal/domain"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// PromSink records simulation events in Prometheus metrics.
type PromSink struct {
	runs        *prometheus.CounterVec
	runDuration prometheus.Histogram
	distance    *prometheus.GaugeVec
	projections *prometheus.CounterVec
}

// NewPromSink registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer.
func NewPromSink(reg prometheus.Registerer) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	runs := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "dispatch_simulation_runs_total",
		Help: "Total number of simulation runs",
	}, []string{"knowledge", "result"})
	runDuration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "dispatch_simulation_duration_seconds",
		Help:    "Wall time spent simulating one service day",
		Buckets: prometheus.DefBuckets,
	})
	distance := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "dispatch_truck_distance_miles",
		Help: "Distance driven by each truck in the latest run",
	}, []string{"truck_id"})
	projections := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "dispatch_status_projections_total",
		Help: "Package statuses returned by point in time queries",
	}, []string{"status"})

	var err error
	if runs, err = register(reg, runs); err != nil {
		return nil, err
	}
	if runDuration, err = register(reg, runDuration); err != nil {
		return nil, err
	}
	if distance, err = register(reg, distance); err != nil {
		return nil, err
	}
	if projections, err = register(reg, projections); err != nil {
		return nil, err
	}

	return &PromSink{
		runs:        runs,
		runDuration: runDuration,
		distance:    distance,
		projections: projections,
	}, nil
}

// register reuses an already registered collector of the same shape.
func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

func (s *PromSink) RecordRun(knowledge string, dur time.Duration, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	s.runs.WithLabelValues(knowledge, result).Inc()
	s.runDuration.Observe(dur.Seconds())
}

func (s *PromSink) RecordTruckDistance(truckID int, miles float64) {
	s.distance.WithLabelValues(strconv.Itoa(truckID)).Set(miles)
}

func (s *PromSink) RecordProjection(status domain.Status) {
	s.projections.WithLabelValues(status.String()).Inc()
}
