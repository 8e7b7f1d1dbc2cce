package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"dlab/internal/config"
)

func TestPortFromEnv(t *testing.T) {
	cases := []struct {
		name  string
		value string
		port  int
		ok    bool
	}{
		{"valid", "28867", 28867, true},
		{"padded", " 8000 ", 8000, true},
		{"empty", "", 0, false},
		{"garbage", "not-a-port", 0, false},
		{"out of range", "70000", 0, false},
		{"zero", "0", 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(config.PortEnvVar, tc.value)
			port, ok := config.PortFromEnv()
			if port != tc.port || ok != tc.ok {
				t.Fatalf("PortFromEnv() = %d, %v; want %d, %v", port, ok, tc.port, tc.ok)
			}
		})
	}
}

func TestPortFromSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "DataLab.ini")
	contents := "[main]\nwindow_maximized = True\nrpc_server_port = 28867\n\n[io]\nh5_fullpath = False\n"
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write ini: %v", err)
	}

	port, err := config.PortFromSettings(path)
	if err != nil {
		t.Fatalf("PortFromSettings: %v", err)
	}
	if port != 28867 {
		t.Fatalf("port = %d", port)
	}
}

func TestPortFromSettingsMissing(t *testing.T) {
	_, err := config.PortFromSettings(filepath.Join(t.TempDir(), "DataLab.ini"))
	if !errors.Is(err, config.ErrNotExecuted) {
		t.Fatalf("missing file: err = %v, want ErrNotExecuted", err)
	}

	path := filepath.Join(t.TempDir(), "DataLab.ini")
	if err := os.WriteFile(path, []byte("[main]\nwindow_maximized = True\n"), 0o644); err != nil {
		t.Fatalf("write ini: %v", err)
	}
	_, err = config.PortFromSettings(path)
	if !errors.Is(err, config.ErrNotExecuted) {
		t.Fatalf("missing key: err = %v, want ErrNotExecuted", err)
	}
}

func TestPortFromSettingsRejectsBadPort(t *testing.T) {
	path := filepath.Join(t.TempDir(), "DataLab.ini")
	if err := os.WriteFile(path, []byte("[main]\nrpc_server_port = 0\n"), 0o644); err != nil {
		t.Fatalf("write ini: %v", err)
	}
	if _, err := config.PortFromSettings(path); err == nil {
		t.Fatal("expected range error")
	}
}

func TestDiscoverPortPrefersEnv(t *testing.T) {
	t.Setenv(config.PortEnvVar, "9123")
	port, err := config.DiscoverPort()
	if err != nil {
		t.Fatalf("DiscoverPort: %v", err)
	}
	if port != 9123 {
		t.Fatalf("port = %d", port)
	}
}
