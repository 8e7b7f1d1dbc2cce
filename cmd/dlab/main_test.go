package main

import (
	"os"
	"path/filepath"
	"testing"

	"dlab/npy"
)

func TestRootCommandWiring(t *testing.T) {
	root := newRootCommand()
	want := []string{
		"version", "methods", "objects", "select", "panel", "open",
		"hdf5", "add", "calc", "label", "annotate", "delete-metadata",
		"reset", "close-app", "config",
	}
	have := map[string]bool{}
	for _, cmd := range root.Commands() {
		have[cmd.Name()] = true
	}
	for _, name := range want {
		if !have[name] {
			t.Errorf("command %q not registered", name)
		}
	}
	for _, flag := range []string{"port", "config", "timeout", "retries", "json", "log-level"} {
		if root.PersistentFlags().Lookup(flag) == nil {
			t.Errorf("persistent flag %q not registered", flag)
		}
	}
}

func TestShouldSkipConfig(t *testing.T) {
	root := newRootCommand()
	for _, cmd := range root.Commands() {
		switch cmd.Name() {
		case "config":
			if !shouldSkipConfig(cmd) {
				t.Error("config command should skip config loading")
			}
			for _, sub := range cmd.Commands() {
				if !shouldSkipConfig(sub) {
					t.Errorf("config %s should skip config loading", sub.Name())
				}
			}
		case "version":
			if shouldSkipConfig(cmd) {
				t.Error("version command should load config")
			}
		}
	}
}

func TestReadArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.npy")
	raw, err := npy.FromFloat64([]float64{1, 2, 3}).Marshal()
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	arr, err := readArray(path)
	if err != nil {
		t.Fatalf("readArray: %v", err)
	}
	if arr.Len() != 3 || arr.DType() != npy.Float64 {
		t.Fatalf("arr = %s %v", arr.DType(), arr.Shape())
	}

	if _, err := readArray(filepath.Join(t.TempDir(), "missing.npy")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestIndexRamp(t *testing.T) {
	ramp := indexRamp(4)
	values, err := ramp.Float64s()
	if err != nil {
		t.Fatalf("Float64s: %v", err)
	}
	for i, v := range values {
		if v != float64(i) {
			t.Fatalf("ramp[%d] = %v", i, v)
		}
	}
}
