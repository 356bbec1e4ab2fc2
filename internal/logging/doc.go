// Package logging constructs the slog loggers used across sortdir and keeps
// structured field names consistent. CLI-facing output stays on stdout; the
// logger records scan, copy, and error events to the configured log file in
// console or JSON format.
package logging
