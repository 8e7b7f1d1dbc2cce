package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"dlab/internal/config"
)

func writeFile(t *testing.T, path, contents string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, _, exists, err := config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if exists {
		t.Fatal("reported a file that does not exist")
	}
	if cfg.Connection.TimeoutSeconds != 5.0 || cfg.Connection.Retries != 10 {
		t.Fatalf("connection defaults = %+v", cfg.Connection)
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("logging defaults = %+v", cfg.Logging)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	writeFile(t, path, "[connection]\nport = 28867\nretries = 3\n\n[logging]\nformat = \"JSON\"\n")

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("resolved = %q exists = %v", resolved, exists)
	}
	if cfg.Connection.Port != 28867 {
		t.Fatalf("port = %d", cfg.Connection.Port)
	}
	if cfg.Connection.Retries != 3 {
		t.Fatalf("retries = %d", cfg.Connection.Retries)
	}
	if cfg.Connection.TimeoutSeconds != 5.0 {
		t.Fatalf("timeout not defaulted: %v", cfg.Connection.TimeoutSeconds)
	}
	if cfg.Logging.Format != "json" {
		t.Fatalf("format not normalized: %q", cfg.Logging.Format)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	cases := []struct {
		name     string
		contents string
	}{
		{"port out of range", "[connection]\nport = 99999\n"},
		{"negative timeout", "[connection]\ntimeout_seconds = -1.0\n"},
		{"bad format", "[logging]\nformat = \"xml\"\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			writeFile(t, path, tc.contents)
			if _, _, _, err := config.Load(path); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestCreateSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}
	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load sample: %v", err)
	}
	if !exists {
		t.Fatal("sample file not found after CreateSample")
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("sample config invalid: %v", err)
	}
}
