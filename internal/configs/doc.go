// Package configs manages the kitlog configuration file.
//
// Configuration is stored in TOML format, by default at
// $XDG_CONFIG_HOME/kitlog/config.toml:
//
//	[logger]
//	verbose = true          # record and emit log lines
//	prefix = "[DeployKit]"  # label in front of every line
//	color = "auto"          # auto | always | never
//
//	[assert]
//	exit_code = 1           # status of a failed assertion
//
//	[audit]
//	enabled = false         # journal lines and assertion failures
//	path = ""               # default: $XDG_DATA_HOME/kitlog/audit.jsonl
//
// Keys missing from the file keep their defaults, and a missing file is
// the same as an empty one.
//
// # Settings
//
// Call InitSettings() before reading KitlogSettings. It resolves the
// config and audit paths from the XDG directories.
package configs
