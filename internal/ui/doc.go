// Package ui provides semantic text formatting for kitlog output.
//
// Formatters render content according to terminal capabilities. When
// colors are available, content is colorized. When NO_COLOR is set, the
// color mode is "never", or the terminal doesn't support colors, text
// decorations (brackets, quotes) are used instead.
//
// # Semantic Formatters
//
//	ui.Prefix.Sprint("[DeployKit]")          // Logger line prefixes
//	ui.Code.Sprint("kitlog assert false")    // Commands and code
//	ui.Path.Sprint("~/.config/kitlog")       // File paths
//	ui.Success.Sprint("✓")                   // Success indicators
//	ui.Error.Sprint("assertion failed")      // Errors and failed assertions
//	ui.Warning.Sprint("⚠")                   // Warnings
//	ui.Info.Sprint("→")                      // Informational hints
//	ui.Highlight.Sprint("deploy-42")         // User values
//	ui.Muted.Sprint("optional")              // De-emphasized text
//
// # Color Modes
//
// ApplyColorMode switches between "auto", "always" and "never". In auto
// mode colors are kept only when standard output is a terminal.
package ui
