// Package logger provides slog attribute helpers for consistent structured
// logging across the kit. Helpers return an empty Attr for zero inputs so
// call sites never need nil checks, and the Principal helper routes through
// the principal's LogValuer so credential digests cannot reach log output.
package logger
