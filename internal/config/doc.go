// Package config resolves everything needed to reach a running DataLab
// instance and loads this tool's own settings.
//
// Port discovery follows the same order the application documents: the
// CDL_XMLRPCPORT environment variable first, then the rpc_server_port entry
// DataLab writes to ~/.DataLab/DataLab.ini on startup. Separately, the dlab
// CLI reads an optional TOML settings file (~/.config/dlab/config.toml) for
// connection defaults and log output preferences.
//
// Obtain ports and settings through this package so callers see sanitized
// values and consistent "DataLab has not yet been executed" errors.
package config
