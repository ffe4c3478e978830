// Package log is a small wrapper around the standard library logger that
// gives each component of mundi a named logger with level helpers.
//
//   - Per-component loggers via ForComponent(name)
//   - Automatic prefix in every line: `[name]` (example: `[source] lookup done`)
//   - Infof, Warnf, Errorf, Debugf
//   - Debug output enabled globally (SetGlobalDebug) or per component
//     (EnableDebugFor / DisableDebugFor)
//   - Central output writer (SetOutput) that also updates existing loggers
//
// Structured fields, JSON output and rotation are out of scope; the goal is
// a consistent, grep-friendly line format across the CLI and the server.
//
// Tests can redirect output by calling SetOutput with a bytes.Buffer and
// asserting on its contents.
package log
