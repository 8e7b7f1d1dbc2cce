package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/ini.v1"
)

// PortEnvVar is the environment variable DataLab honors for its XML-RPC port.
const PortEnvVar = "CDL_XMLRPCPORT"

// ErrNotExecuted indicates the application has never written its settings
// file, so no port can be discovered from it.
var ErrNotExecuted = errors.New("DataLab has not yet been executed")

// PortFromEnv reads the XML-RPC port from the environment. A missing or
// malformed value is reported as absent, matching the application's own
// tolerant lookup.
func PortFromEnv() (int, bool) {
	raw, ok := os.LookupEnv(PortEnvVar)
	if !ok {
		return 0, false
	}
	port, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || port < 1 || port > 65535 {
		return 0, false
	}
	return port, true
}

// SettingsPath returns the location of the application's ini file,
// ~/.DataLab/DataLab.ini.
func SettingsPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".DataLab", "DataLab.ini"), nil
}

// PortFromSettings reads rpc_server_port from the [main] section of the
// application's ini file at path.
func PortFromSettings(path string) (int, error) {
	file, err := ini.Load(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return 0, ErrNotExecuted
		}
		return 0, fmt.Errorf("read %s: %w", path, err)
	}
	section := file.Section("main")
	if !section.HasKey("rpc_server_port") {
		return 0, ErrNotExecuted
	}
	port, err := section.Key("rpc_server_port").Int()
	if err != nil {
		return 0, fmt.Errorf("rpc_server_port in %s: %w", path, err)
	}
	if port < 1 || port > 65535 {
		return 0, fmt.Errorf("rpc_server_port %d in %s is out of range", port, path)
	}
	return port, nil
}

// DiscoverPort resolves the XML-RPC port: environment variable first, then
// the application's settings file.
func DiscoverPort() (int, error) {
	if port, ok := PortFromEnv(); ok {
		return port, nil
	}
	path, err := SettingsPath()
	if err != nil {
		return 0, err
	}
	return PortFromSettings(path)
}
