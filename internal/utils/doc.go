// Package utils provides shared helpers for kitlog.
//
// # System Utilities
//
//   - GetUsername, GetHostname: identify who produced an audit entry
//   - DataDir: resolves $XDG_DATA_HOME with the ~/.local/share fallback
//   - FileExists: regular-file check used by config init
//
// # Terminal Utilities
//
//   - IsTerminal, IsStdoutTerminal: decide color and spinner behavior
//   - TerminalWidth: width of the attached terminal, with a fallback
package utils
