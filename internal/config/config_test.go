package config

import (
	"dispatch-simulation-service/internal/domain"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, "config.yaml", `server:
  port: "9090"
database:
  driver: "sqlite"
  path: "/tmp/dispatch.db"
logging:
  level: "debug"
simulation:
  speed_mph: 20
  trucks:
    - id: 1
      depart_at: "8:00"
      packages: [1, 2]
    - id: 2
      depart_after_return: true
      packages: [3]
  delay:
    note_prefix: "Late"
    arrives_at: "09:30"
  corrections:
    - package_id: 3
      at: "11:00"
      before: {address: "Old St"}
      after: {address: "New St", zipcode: "84000"}
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load error: %v", err)
	}

	opts, err := cfg.Simulation.Resolve()
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}

	checks := []struct {
		name string
		got  any
		want any
	}{
		{"port", cfg.Server.Port, "9090"},
		{"driver", cfg.Database.Driver, "sqlite"},
		{"path", cfg.Database.Path, "/tmp/dispatch.db"},
		{"level", cfg.Logging.Level, "debug"},
		{"speed", opts.SpeedMph, 20.0},
		{"depot default", opts.Depot, "4001 South 700 East"},
		{"capacity default", opts.TruckCapacity, domain.DefaultTruckCapacity},
		{"schedules", len(opts.Schedules), 2},
		{"truck 1 departs", opts.Schedules[0].DepartAt, domain.At(8, 0)},
		{"truck 2 waits", opts.Schedules[1].WaitForReturn, true},
		{"partition size", opts.Partition.Len(), 3},
		{"delay marker", opts.Delay.NotePrefix, "Late"},
		{"delay arrival", opts.Delay.ArrivesAt, domain.At(9, 30)},
		{"corrections", len(opts.Corrections), 1},
		{"correction cutoff", opts.Corrections[0].Cutoff, domain.At(11, 0)},
		{"correction after", opts.Corrections[0].After.Address, "New St"},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Fatalf("%s: got %v, want %v", c.name, c.got, c.want)
		}
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load error: %v", err)
	}

	opts, err := cfg.Simulation.Resolve()
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if opts.Partition.Len() != 40 {
		t.Fatalf("default partition covers %d packages, want 40", opts.Partition.Len())
	}
	if truck, _ := opts.Partition.TruckOf(9); truck != 3 {
		t.Fatalf("package 9 on truck %d, want 3", truck)
	}
	if !opts.Schedules[2].WaitForReturn || opts.Schedules[1].DepartAt != domain.At(9, 5) {
		t.Fatalf("unexpected default schedules: %+v", opts.Schedules)
	}
	if len(opts.Corrections) != 1 || opts.Corrections[0].PackageID != 9 {
		t.Fatalf("unexpected default corrections: %+v", opts.Corrections)
	}
	if cfg.Data.SeedPath != "data/seeds/dataset.json" {
		t.Fatalf("seed path = %q", cfg.Data.SeedPath)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	path := writeConfig(t, "config.json", `{"server": {"port": "8081"}}`)
	t.Setenv("DISPATCH_SERVER__PORT", "7070")
	t.Setenv("DISPATCH_LOGGING__LEVEL", "warn")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	if cfg.Server.Port != "7070" {
		t.Fatalf("port = %q, want 7070", cfg.Server.Port)
	}
	if cfg.Logging.Level != "warn" {
		t.Fatalf("level = %q, want warn", cfg.Logging.Level)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	cases := map[string]string{
		"driver":    "database:\n  driver: mysql\n",
		"postgres":  "database:\n  driver: postgres\n",
		"level":     "logging:\n  level: loud\n",
		"depart_at": "simulation:\n  trucks:\n    - id: 1\n      depart_at: \"25:00\"\n      packages: [1]\n",
		"overlap":   "simulation:\n  trucks:\n    - {id: 1, depart_at: \"08:00\", packages: [1]}\n    - {id: 2, depart_at: \"08:00\", packages: [1]}\n",
		"no depart": "simulation:\n  trucks:\n    - {id: 1, packages: [1]}\n",
		"all wait":  "simulation:\n  trucks:\n    - {id: 1, depart_after_return: true, packages: [1]}\n",
		"over full": "simulation:\n  truck_capacity: 1\n  trucks:\n    - {id: 1, depart_at: \"08:00\", packages: [1, 2]}\n",
	}
	t.Setenv("DATABASE_URL", "")

	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := Load(writeConfig(t, "config.yaml", data)); err == nil {
				t.Fatalf("expected error for %s", name)
			}
		})
	}
}

func TestResolveMalformedTime(t *testing.T) {
	c := SimulationConfig{}
	c.SetDefaults()
	c.Delay.ArrivesAt = "9h05"

	_, err := c.Resolve()
	if !errors.Is(err, domain.ErrMalformedTime) {
		t.Fatalf("expected ErrMalformedTime, got %v", err)
	}
}

func TestLoadUnsupportedFormat(t *testing.T) {
	if _, err := Load(writeConfig(t, "config.toml", "")); err == nil {
		t.Fatalf("expected unsupported format error")
	}
}

func TestGet(t *testing.T) {
	t.Setenv("DISPATCH_TEST_VALUE", "set")
	if got := Get("DISPATCH_TEST_VALUE", "fallback"); got != "set" {
		t.Fatalf("got %q, want set", got)
	}
	if got := Get("DISPATCH_TEST_MISSING", "fallback"); got != "fallback" {
		t.Fatalf("got %q, want fallback", got)
	}
}
