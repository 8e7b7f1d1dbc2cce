package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"dlab/internal/logging"
)

func TestConsoleOutput(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "debug", Format: "console", Output: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger = logger.With("component", "remote")
	logger.Info("calling method", "method", "get_version", "port", 28867)

	line := buf.String()
	for _, want := range []string{"INFO", "[remote]", "calling method", "method=get_version", "port=28867"} {
		if !strings.Contains(line, want) {
			t.Errorf("line missing %q: %s", want, line)
		}
	}
	if strings.Contains(line, "component=") {
		t.Errorf("component should render in brackets, not as a field: %s", line)
	}
}

func TestConsoleQuotesSpacedValues(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Format: "console", Output: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger.Info("added", "title", "noisy sine")
	if !strings.Contains(buf.String(), `title="noisy sine"`) {
		t.Fatalf("value not quoted: %s", buf.String())
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "warn", Format: "console", Output: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger.Info("hidden")
	logger.Warn("visible")
	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("info record passed a warn-level logger")
	}
	if !strings.Contains(out, "visible") {
		t.Error("warn record missing")
	}
}

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Format: "json", Output: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger.Info("connected", "port", 8000)

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if record["msg"] != "connected" || record["port"] != float64(8000) {
		t.Fatalf("record = %v", record)
	}
}

func TestUnsupportedFormat(t *testing.T) {
	if _, err := logging.New(logging.Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestNopLogger(t *testing.T) {
	logger := logging.NewNop()
	logger.Error("should not panic or write")
	if logger.Enabled(context.Background(), 0) {
		t.Fatal("nop logger should report disabled")
	}
}
