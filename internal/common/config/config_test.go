package config

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "EVENTS_PORT", "EVENTS_URL", "ENV", "READ_TIMEOUT", "WRITE_TIMEOUT", "CELL_SIZE", "DOCS_PATH", "CORS_ORIGINS"} {
		t.Setenv(key, "")
	}

	expected := &Config{
		Port:         "3000",
		EventsPort:   "3001",
		EventsURL:    "http://localhost:3001/events",
		Environment:  "development",
		ReadTimeout:  10,
		WriteTimeout: 10,
		CellSize:     50,
		DocsPath:     "docs/circuit-board.openapi.yaml",
	}
	if got := Load(); !cmp.Equal(got, expected) {
		t.Fatalf("config diff: %s", cmp.Diff(expected, got))
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("EVENTS_PORT", "8081")
	t.Setenv("EVENTS_URL", "")
	t.Setenv("CELL_SIZE", "-3")
	t.Setenv("READ_TIMEOUT", "not-a-number")
	t.Setenv("CORS_ORIGINS", " http://a.test , ,http://b.test")

	cfg := Load()
	if cfg.Port != "8080" || cfg.EventsURL != "http://localhost:8081/events" {
		t.Fatalf("unexpected ports: %+v", cfg)
	}
	if cfg.CellSize != 50 {
		t.Fatalf("invalid cell size must fall back to 50, got %d", cfg.CellSize)
	}
	if cfg.ReadTimeout != 10 {
		t.Fatalf("invalid timeout must fall back to 10, got %d", cfg.ReadTimeout)
	}
	if !cmp.Equal(cfg.CORSOrigins, []string{"http://a.test", "http://b.test"}) {
		t.Fatalf("unexpected origins: %v", cfg.CORSOrigins)
	}
}
