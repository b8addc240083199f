package config

import (
	"dispatch-simulation-service/internal/domain"
	"dispatch-simulation-service/internal/services"
	"fmt"
)

// SimulationConfig describes the service day: fleet, static partition,
// the delayed-flight marker and known address corrections.
// Clock values are "HH:MM".
type SimulationConfig struct {
	Depot           string             `json:"depot"`
	SpeedMph        float64            `json:"speed_mph"`
	TruckCapacity   int                `json:"truck_capacity"`
	DefaultLoadTime string             `json:"default_load_time"`
	Trucks          []TruckConfig      `json:"trucks"`
	Delay           DelayConfig        `json:"delay"`
	Corrections     []CorrectionConfig `json:"corrections"`
}

type TruckConfig struct {
	ID                int    `json:"id"`
	DepartAt          string `json:"depart_at"`
	DepartAfterReturn bool   `json:"depart_after_return"`
	Packages          []int  `json:"packages"`
}

type DelayConfig struct {
	NotePrefix string `json:"note_prefix"`
	ArrivesAt  string `json:"arrives_at"`
}

type AddressConfig struct {
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zipcode string `json:"zipcode"`
}

type CorrectionConfig struct {
	PackageID int           `json:"package_id"`
	At        string        `json:"at"`
	Before    AddressConfig `json:"before"`
	After     AddressConfig `json:"after"`
}

// SetDefaults fills the standard three-truck day for any unset field.
func (c *SimulationConfig) SetDefaults() {
	def := services.DefaultOptions()

	if c.Depot == "" {
		c.Depot = def.Depot
	}
	if c.SpeedMph == 0 {
		c.SpeedMph = def.SpeedMph
	}
	if c.TruckCapacity == 0 {
		c.TruckCapacity = def.TruckCapacity
	}
	if c.DefaultLoadTime == "" {
		c.DefaultLoadTime = "08:00"
	}
	if len(c.Trucks) == 0 {
		for _, m := range def.Partition.Manifests() {
			tc := TruckConfig{ID: m.TruckID, Packages: m.PackageIDs}
			for _, s := range def.Schedules {
				if s.TruckID == m.TruckID {
					tc.DepartAfterReturn = s.WaitForReturn
					if !s.WaitForReturn {
						tc.DepartAt = clock(s.DepartAt)
					}
				}
			}
			c.Trucks = append(c.Trucks, tc)
		}
	}
	if c.Delay.NotePrefix == "" {
		c.Delay.NotePrefix = def.Delay.NotePrefix
	}
	if c.Delay.ArrivesAt == "" {
		c.Delay.ArrivesAt = clock(def.Delay.ArrivesAt)
	}
	if c.Corrections == nil {
		for _, corr := range def.Corrections {
			c.Corrections = append(c.Corrections, CorrectionConfig{
				PackageID: corr.PackageID,
				At:        clock(corr.Cutoff),
				Before:    addressConfig(corr.Before),
				After:     addressConfig(corr.After),
			})
		}
	}
}

// Resolve converts the configuration into simulator options.
func (c SimulationConfig) Resolve() (services.Options, error) {
	loadTime, err := domain.ParseTimeOfDay(c.DefaultLoadTime)
	if err != nil {
		return services.Options{}, fmt.Errorf("default_load_time: %w", err)
	}

	manifests := make([]domain.TruckManifest, 0, len(c.Trucks))
	schedules := make([]services.TruckSchedule, 0, len(c.Trucks))
	for _, t := range c.Trucks {
		manifests = append(manifests, domain.TruckManifest{TruckID: t.ID, PackageIDs: t.Packages})

		sched := services.TruckSchedule{TruckID: t.ID, WaitForReturn: t.DepartAfterReturn}
		if !t.DepartAfterReturn {
			if t.DepartAt == "" {
				return services.Options{}, fmt.Errorf("truck %d: depart_at or depart_after_return is required", t.ID)
			}
			if sched.DepartAt, err = domain.ParseTimeOfDay(t.DepartAt); err != nil {
				return services.Options{}, fmt.Errorf("truck %d: depart_at: %w", t.ID, err)
			}
		}
		if len(t.Packages) > c.TruckCapacity {
			return services.Options{}, fmt.Errorf(
				"truck %d: %d packages over capacity %d: %w",
				t.ID, len(t.Packages), c.TruckCapacity, domain.ErrTruckFull,
			)
		}
		schedules = append(schedules, sched)
	}

	partition, err := domain.NewPartition(manifests)
	if err != nil {
		return services.Options{}, err
	}

	arrives, err := domain.ParseTimeOfDay(c.Delay.ArrivesAt)
	if err != nil {
		return services.Options{}, fmt.Errorf("delay.arrives_at: %w", err)
	}

	corrections := make([]services.AddressCorrection, 0, len(c.Corrections))
	for _, corr := range c.Corrections {
		cutoff, err := domain.ParseTimeOfDay(corr.At)
		if err != nil {
			return services.Options{}, fmt.Errorf("correction for package %d: %w", corr.PackageID, err)
		}
		corrections = append(corrections, services.AddressCorrection{
			PackageID: corr.PackageID,
			Cutoff:    cutoff,
			Before:    corr.Before.destination(),
			After:     corr.After.destination(),
		})
	}

	opts := services.Options{
		Depot:           c.Depot,
		SpeedMph:        c.SpeedMph,
		TruckCapacity:   c.TruckCapacity,
		DefaultLoadTime: loadTime,
		Partition:       partition,
		Schedules:       schedules,
		Delay:           services.DelayRule{NotePrefix: c.Delay.NotePrefix, ArrivesAt: arrives},
		Corrections:     corrections,
	}
	if err := opts.Validate(); err != nil {
		return services.Options{}, err
	}
	return opts, nil
}

func (a AddressConfig) destination() domain.Destination {
	return domain.Destination{Address: a.Address, City: a.City, State: a.State, Zipcode: a.Zipcode}
}

func addressConfig(d domain.Destination) AddressConfig {
	return AddressConfig{Address: d.Address, City: d.City, State: d.State, Zipcode: d.Zipcode}
}

func clock(t domain.TimeOfDay) string {
	return t.String()[:5]
}
