// Package logger provides structured logging for the ossd tools.
//
// It wraps log/slog behind a small Logger interface:
//
//   - logger.go: handler construction, level parsing, global default
//   - context.go: context propagation of the logger and the run ID
//
// Diagnostics (file counts, parse errors, written snapshots) are emitted
// through this package so they can be switched between text for operators
// and JSON for log collectors.
package logger
