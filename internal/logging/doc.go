// Package logging assembles the structured slog loggers used by the dlab
// CLI and shared helpers.
//
// It owns the console and JSON handlers, level parsing, and a no-op logger
// for tests and wiring code that cannot fail. The console handler keeps
// remote-call logging readable: one line per event with the component in
// brackets and attributes as key=value pairs, colorized only when stderr is
// a terminal.
package logging
