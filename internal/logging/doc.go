// Package logging assembles structured slog loggers and formatting helpers used
// across scriptdesk commands.
//
// It owns the configurable console/JSON handlers, centralizes level and output
// plumbing, and exposes context helpers so conversion and library code can tag
// log lines with the source document and script ID. The package also provides
// a no-op logger for tests and wiring code that cannot fail.
package logging
