// Package metrics records simulation activity.
package metrics

import (
	"dispatch-simulation-service/internal/domain"
	"time"
)

// Sink receives simulation and query events.
type Sink interface {
	RecordRun(knowledge string, dur time.Duration, err error)
	RecordTruckDistance(truckID int, miles float64)
	RecordProjection(status domain.Status)
}

// NopSink discards every event.
type NopSink struct{}

func (NopSink) RecordRun(string, time.Duration, error) {}
func (NopSink) RecordTruckDistance(int, float64) {}
func (NopSink) RecordProjection(domain.Status) {}
