package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v3"
)

type staticCounter int

func (c staticCounter) Count() int { return int(c) }

func TestProbes(t *testing.T) {
	h := NewHealthHandler(staticCounter(3))
	app := fiber.New()
	app.Get("/health/live", h.LivenessProbe)
	app.Get("/health/ready", h.ReadinessProbe)
	app.Get("/health/startup", h.StartupProbe)

	cases := map[string]string{
		"/health/live":    "alive",
		"/health/ready":   "ready",
		"/health/startup": "started",
	}
	for path, status := range cases {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil))
		if err != nil {
			t.Fatalf("%s: %s", path, err)
		}
		var body map[string]any
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			t.Fatalf("%s: decode: %s", path, err)
		}
		if body["status"] != status {
			t.Fatalf("%s: expected %q, got %v", path, status, body["status"])
		}
		if path == "/health/ready" && body["boards"] != float64(3) {
			t.Fatalf("expected 3 boards, got %v", body["boards"])
		}
	}
}

func TestSwaggerSpec(t *testing.T) {
	path := filepath.Join(t.TempDir(), "openapi.yaml")
	if err := os.WriteFile(path, []byte("openapi: 3.0.3\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	app := fiber.New()
	app.Get("/docs/openapi.yaml", SwaggerSpec(path))
	app.Get("/missing.yaml", SwaggerSpec(filepath.Join(t.TempDir(), "nope.yaml")))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/docs/openapi.yaml", nil))
	if err != nil {
		t.Fatal(err)
	}
	data, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK || string(data) != "openapi: 3.0.3\n" {
		t.Fatalf("unexpected spec response %d: %s", resp.StatusCode, data)
	}

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/missing.yaml", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}
